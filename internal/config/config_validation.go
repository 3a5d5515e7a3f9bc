// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants that hold regardless of which binary consumes
// the merged [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workflow.MaxActiveRPCs < 0 {
		return ErrInvalidWorkflowConfigs
	}

	return nil
}

func (cfg *DeviceConfig) validate() error {
	if cfg.Device.Serial == "" {
		return ErrInvalidDeviceConfigs
	}

	if !cfg.Device.SkipTagCheck && cfg.Device.Key == "" && cfg.Device.KeyPassphrase == "" {
		return ErrInvalidDeviceConfigs
	}

	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workflow.TickInterval <= 0 || cfg.Workflow.MaxActiveRPCs <= 0 {
		return ErrInvalidWorkflowConfigs
	}

	if cfg.Workflow.PollStateThreshold < 0 || cfg.Workflow.PushSenseThreshold < 0 {
		return ErrInvalidWorkflowConfigs
	}

	return nil
}

func (cfg *IngestConfig) validate() error {
	if cfg.Device.Serial == "" {
		return ErrInvalidDeviceConfigs
	}

	if cfg.Device.Key == "" && cfg.Device.KeyPassphrase == "" {
		return ErrInvalidDeviceConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

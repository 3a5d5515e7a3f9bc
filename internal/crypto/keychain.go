// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto resolves device key material.
package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrNoKeyMaterial is returned when neither a hex key nor a passphrase is configured.
	ErrNoKeyMaterial = errors.New("no device key material configured")
	// ErrInvalidHexKey is returned when the configured key is not valid hex.
	ErrInvalidHexKey = errors.New("device key is not valid hex")
	// ErrEmptySerial is returned when a passphrase is set but the serial used as salt is empty.
	ErrEmptySerial = errors.New("device serial is required to derive a key")
)

// saltPrefix domain-separates device keys from any other Argon2 use of the
// same passphrase.
const saltPrefix = "polip-device-key:"

// keyChain is the private implementation of [KeyProvider].
type keyChain struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyProvider] with Argon2id parameters suited to
// small devices:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyProvider {
	return &keyChain{
		argonTime:    2,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

// DeviceKey implements [KeyProvider].
func (k *keyChain) DeviceKey(serial, hexKey, passphrase string) ([]byte, error) {
	if hexKey = strings.TrimSpace(hexKey); hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHexKey, err)
		}
		if len(key) == 0 {
			return nil, ErrNoKeyMaterial
		}
		return key, nil
	}

	if passphrase == "" {
		return nil, ErrNoKeyMaterial
	}
	if serial == "" {
		return nil, ErrEmptySerial
	}

	return k.DeriveKey(passphrase, serial), nil
}

// DeriveKey implements [KeyProvider].
func (k *keyChain) DeriveKey(passphrase, serial string) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		[]byte(saltPrefix+serial),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

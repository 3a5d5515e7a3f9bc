package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a ingest service base URL used by the device
//	-s simulator listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-serial device serial
//	-key device key (hex)
//	-passphrase device key passphrase
//	-skip-tag-check disable tag signing and verification
//	-tick workflow tick interval (e.g., "250ms")
//	-max-rpcs RPC pool capacity
//	-request-timeout adapter request timeout (e.g., "10s")
//	-server-timeout simulator request timeout (e.g., "30s")
//	-headless run the device without the dashboard
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var serial, key, passphrase string
	var skipTagCheck, headless bool
	var tickInterval time.Duration
	var maxRPCs int
	var requestTimeout, serverTimeout time.Duration

	flag.StringVar(&adapterAddress, "a", "", "Ingest service base URL")
	flag.Var(&serverAddress, "s", "Simulator net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&serial, "serial", "", "Device serial")
	flag.StringVar(&key, "key", "", "Device key (hex)")
	flag.StringVar(&passphrase, "passphrase", "", "Device key passphrase")
	flag.BoolVar(&skipTagCheck, "skip-tag-check", false, "Disable tag signing and verification")
	flag.DurationVar(&tickInterval, "tick", 0, "Workflow tick interval (e.g., 250ms)")
	flag.IntVar(&maxRPCs, "max-rpcs", 0, "RPC pool capacity")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Adapter request timeout (e.g., 10s)")
	flag.DurationVar(&serverTimeout, "server-timeout", 0, "Simulator request timeout (e.g., 30s)")
	flag.BoolVar(&headless, "headless", false, "Run without the dashboard")

	flag.Parse()

	return &StructuredConfig{
		Device: Device{
			Serial:        serial,
			Key:           key,
			KeyPassphrase: passphrase,
			SkipTagCheck:  skipTagCheck,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workflow: Workflow{
			TickInterval:  tickInterval,
			MaxActiveRPCs: maxRPCs,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		App: App{
			Headless: headless,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

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
//	-a server address in format [host]:[port]
//	-d database DSN
//	-remote remote element store base URL
//	-cache-path local cache file path
//	-cache-max-bytes local cache capacity budget in bytes
//	-cache-keep number of recently accessed canvases exempt from eviction
//	-actor-id acting user identity
//	-flush-interval pending-write flush interval (e.g. "30s", "1m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var remoteAddress string
	var cachePath string
	var cacheMaxBytes int64
	var cacheKeepCanvases int
	var actorID string
	var flushInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&remoteAddress, "remote", "", "Remote element store base URL")
	flag.StringVar(&cachePath, "cache-path", "", "Local cache file path")
	flag.Int64Var(&cacheMaxBytes, "cache-max-bytes", 0, "Local cache capacity in bytes")
	flag.IntVar(&cacheKeepCanvases, "cache-keep", 0, "Recently accessed canvases exempt from eviction")
	flag.StringVar(&actorID, "actor-id", "", "Acting user identity")
	flag.DurationVar(&flushInterval, "flush-interval", 0, "Pending-write flush interval (e.g., 30s, 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ActorID: actorID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				Path:         cachePath,
				MaxBytes:     cacheMaxBytes,
				KeepCanvases: cacheKeepCanvases,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{FlushInterval: flushInterval},
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a flag.Value holding a listen address. The host may be
// empty (all interfaces), "localhost" or a literal IPv4/IPv6 address.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the server flags from os.Args. flag.CommandLine exits
// the process with usage on an invalid value; unset flags stay zero and defer
// to the other configuration sources.
//
//	-a               HTTP address host:port
//	-grpc-address    gRPC health address host:port
//	-d               database DSN
//	-redis-address   redis address host:port
//	-c, -config      JSON config file
//	-request-timeout per request timeout, e.g. 30s
//	-rate-limit      requests per minute per client IP
//	-log-level       minimal log level
//	-version         application version
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg                StructuredConfig
		httpAddr, grpcAddr NetAddress
	)

	fs.Var(&httpAddr, "a", "HTTP address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN (postgres://, sqlite:// or file:)")
	fs.Func("redis-address", "redis address host:port", func(s string) error {
		if err := validateDialAddress(s); err != nil {
			return err
		}
		cfg.Storage.Redis.Address = s
		return nil
	})
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (same as -c)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per request timeout, e.g. 30s")
	fs.IntVar(&cfg.Server.RateLimit, "rate-limit", 0, "requests per minute per client IP, -1 disables")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "minimal log level")
	fs.StringVar(&cfg.App.Version, "version", "", "application version")

	err := fs.Parse(args)

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()

	return &cfg, err
}

// validateDialAddress accepts host:port where host may be any hostname,
// e.g. a container or service name.
func validateDialAddress(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}
	if host == "" {
		return errors.New("dial address needs a host")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", rawPort)
	}

	return nil
}

// String renders the address as host:port, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. Hostnames other than localhost are rejected because
// the address is used for listening.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host, a.Port = host, port
	return nil
}

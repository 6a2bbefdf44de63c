package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a host:port flag value. An empty host binds every
// interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads the server command line into a [StructuredConfig]. Flags
// that are not given stay zero so they do not override other sources.
//
// Flags:
//
//	-a                  HTTP address [host]:port
//	-grpc-address       gRPC health address [host]:port
//	-d                  database DSN
//	-driver             database driver (postgres or sqlite)
//	-max-open-conns     database pool size
//	-max-idle-conns     database idle pool size
//	-c, -config         JSON config file
//	-password-hash-cost bcrypt cost factor
//	-app-version        version reported by /api/version
//	-request-timeout    per-request timeout (e.g. "30s")
//	-shutdown-timeout   graceful shutdown timeout (e.g. "5s")
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress
		cfg                      StructuredConfig
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver: postgres or sqlite")
	fs.IntVar(&cfg.Storage.DB.MaxOpenConns, "max-open-conns", 0, "max open database connections")
	fs.IntVar(&cfg.Storage.DB.MaxIdleConns, "max-idle-conns", 0, "max idle database connections")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost factor")
	fs.StringVar(&cfg.App.Version, "app-version", "", "version reported by /api/version")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout, e.g. 30s")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout, e.g. 5s")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected argument %q", fs.Arg(0))
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses [host]:port. The host may be empty, a name or an IP literal
// (IPv6 in brackets); the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port is not a number: %w", err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "" && net.ParseIP(host) == nil && !validHostname(host) {
		return fmt.Errorf("incorrect host %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}

// validHostname checks RFC 1123 label syntax.
func validHostname(host string) bool {
	if len(host) > 253 {
		return false
	}

	labelLen := 0
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c == '.':
			if labelLen == 0 || host[i-1] == '-' {
				return false
			}
			labelLen = 0
		case c == '-':
			if labelLen == 0 {
				return false
			}
			labelLen++
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			labelLen++
		default:
			return false
		}
		if labelLen > 63 {
			return false
		}
	}

	return labelLen > 0 && host[len(host)-1] != '-'
}

var _ flag.Value = (*NetAddress)(nil)

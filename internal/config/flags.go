package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the server flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config JSON or YAML config file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "24h")
//	-employee-role-id role allowed through employee-only routes
//	-request-timeout request timeout (e.g. "30s")
//	-lookup-timeout existence lookup timeout (e.g. "3s")
//	-concurrency fields validated in parallel
func ParseFlags() (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	return parseFlags(fs, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver string
	var configPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, lookupTimeout time.Duration
	var employeeRoleID int64
	var concurrency int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.Int64Var(&employeeRoleID, "employee-role-id", 0, "Role ID allowed through employee-only routes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&lookupTimeout, "lookup-timeout", 0, "Existence lookup timeout (e.g., 3s)")
	fs.IntVar(&concurrency, "concurrency", 0, "Number of fields validated in parallel")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			EmployeeRoleID: employeeRoleID,
		},
		Storage: Storage{
			DB: DB{
				Driver:        driver,
				DSN:           databaseDSN,
				LookupTimeout: lookupTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Validation: Validation{
			Concurrency: concurrency,
		},
		FilePath: configPath,
	}, nil
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
// Hosts other than "localhost" must be IP addresses.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

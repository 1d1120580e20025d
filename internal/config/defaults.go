package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultDriver           = DriverPostgres
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenIssuer      = "go-class-reports"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultEmployeeRoleID   = 2
	DefaultPasswordHashCost = 10
	DefaultLookupTimeout    = 3 * time.Second
	DefaultLookupRetries    = 2
	DefaultConcurrency      = 4
	DefaultClientAddress    = "http://localhost:8080"
	DefaultClientTimeout    = 10 * time.Second
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			EmployeeRoleID:   DefaultEmployeeRoleID,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:        DefaultDriver,
				LookupTimeout: DefaultLookupTimeout,
				LookupRetries: DefaultLookupRetries,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Validation: Validation{
			Concurrency: DefaultConcurrency,
		},
		Client: Client{
			Address: DefaultClientAddress,
			Timeout: DefaultClientTimeout,
		},
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of the configuration file.
// The same structure is used for JSON and YAML.
type fileConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" yaml:"token_duration"`
		EmployeeRoleID   int64    `json:"employee_role_id" yaml:"employee_role_id"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver        string   `json:"driver" yaml:"driver"`
			DSN           string   `json:"dsn" yaml:"dsn"`
			LookupTimeout Duration `json:"lookup_timeout" yaml:"lookup_timeout"`
			LookupRetries int      `json:"lookup_retries" yaml:"lookup_retries"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Validation struct {
		Concurrency int `json:"concurrency" yaml:"concurrency"`
	} `json:"validation" yaml:"validation"`

	Client struct {
		Address string   `json:"address" yaml:"address"`
		Timeout Duration `json:"timeout" yaml:"timeout"`
	} `json:"client" yaml:"client"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = decodeJSON(f, &fc)
	case ".yaml", ".yml":
		err = decodeYAML(f, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func decodeJSON(r io.Reader, fc *fileConfig) error {
	return json.NewDecoder(r).Decode(fc)
}

func decodeYAML(r io.Reader, fc *fileConfig) error {
	err := yaml.NewDecoder(r).Decode(fc)
	if err == io.EOF {
		return nil
	}
	return err
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     fc.App.TokenSignKey,
			TokenIssuer:      fc.App.TokenIssuer,
			TokenDuration:    time.Duration(fc.App.TokenDuration),
			EmployeeRoleID:   fc.App.EmployeeRoleID,
			PasswordHashCost: fc.App.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver:        fc.Storage.DB.Driver,
				DSN:           fc.Storage.DB.DSN,
				LookupTimeout: time.Duration(fc.Storage.DB.LookupTimeout),
				LookupRetries: fc.Storage.DB.LookupRetries,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Validation: Validation{
			Concurrency: fc.Validation.Concurrency,
		},
		Client: Client{
			Address: fc.Client.Address,
			Timeout: time.Duration(fc.Client.Timeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Bare numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

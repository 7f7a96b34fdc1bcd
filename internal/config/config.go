// Package config provides the yaml based configuration for diagpage.
// Values in the configuration file may reference environment variables,
// they are substituted before the file is parsed.
package config

import (
	"fmt"
	"os"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Core struct {
		// DevMode enables rendering of diagnostic error pages. If disabled,
		// failed requests get a plain JSON error response instead.
		DevMode bool `yaml:"dev_mode"`
		// EscapeTitles controls whether the error title and the request
		// summary are HTML-escaped on the diagnostic page. The historic page
		// layout leaves them raw.
		EscapeTitles bool `yaml:"escape_titles"`
		// StrictDelivery escalates I/O faults during page delivery instead
		// of logging and suppressing them.
		StrictDelivery bool `yaml:"strict_delivery"`
		// RecordFaults enables persisting of rendered diagnostics to the database.
		RecordFaults bool `yaml:"record_faults"`
		// MailFaults enables e-mail notifications for rendered diagnostics.
		MailFaults bool `yaml:"mail_faults"`
		// MailRecipients is the list of notification recipients.
		MailRecipients []string `yaml:"mail_recipients" validate:"dive,email"`
	} `yaml:"core"`

	Advanced struct {
		// LogLevel sets the verbosity of the logger. Supported: trace, debug, info, warn, error.
		LogLevel string `yaml:"log_level"`
		// LogJson switches the log output to the JSON format.
		LogJson bool `yaml:"log_json"`
	} `yaml:"advanced"`

	Statistics struct {
		// ListeningAddress is the address and port for the metrics server.
		ListeningAddress string `yaml:"listening_address" validate:"required"`
	} `yaml:"statistics"`

	Mail MailConfig `yaml:"mail"`

	Database DatabaseConfig `yaml:"database"`

	Web WebConfig `yaml:"web"`
}

func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Core.DevMode = true
	cfg.Core.RecordFaults = true

	cfg.Advanced.LogLevel = "info"

	cfg.Statistics.ListeningAddress = ":8787"

	cfg.Database = DatabaseConfig{
		Type: DatabaseSQLite,
		DSN:  "data/faults.db",
	}

	cfg.Web = WebConfig{
		RequestLogging:   false,
		ListeningAddress: ":8080",
		SiteTitle:        "diagpage",
	}

	cfg.Mail = MailConfig{
		Host:           "127.0.0.1",
		Port:           25,
		Encryption:     MailEncryptionNone,
		CertValidation: true,
		AuthType:       MailAuthPlain,
		From:           "diagpage@localhost",
	}

	return cfg
}

// GetConfig returns the configuration, loaded from the yaml file that the
// DIAGPAGE_CONFIG environment variable points to (config.yml by default).
// A missing file is not an error, the defaults are used in that case.
func GetConfig() (*Config, error) {
	cfg := defaultConfig()

	cfgFileName := "config.yml"
	if envCfgFileName := os.Getenv("DIAGPAGE_CONFIG"); envCfgFileName != "" {
		cfgFileName = envCfgFileName
	}

	if err := loadConfigFile(cfg, cfgFileName); err != nil {
		return nil, fmt.Errorf("failed to load config from yaml: %w", err)
	}

	cfg.Web.Sanitize()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(cfg any, filename string) error {
	data, err := envsubst.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no config file, defaults apply
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

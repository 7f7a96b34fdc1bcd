package config

import "strings"

// WebConfig contains the configuration for the web server.
type WebConfig struct {
	// RequestLogging enables logging of all HTTP requests.
	RequestLogging bool `yaml:"request_logging"`
	// ExposeHostInfo sets whether the host information should be exposed in a response header.
	ExposeHostInfo bool `yaml:"expose_host_info"`
	// ListeningAddress is the address and port for the web server.
	ListeningAddress string `yaml:"listening_address" validate:"required"`
	// SiteTitle is the title of the demo pages.
	SiteTitle string `yaml:"site_title"`
	// CertFile is the path to the TLS certificate file.
	CertFile string `yaml:"cert_file"`
	// KeyFile is the path to the TLS certificate key file.
	KeyFile string `yaml:"key_file"`
}

func (c *WebConfig) Sanitize() {
	c.SiteTitle = strings.TrimSpace(c.SiteTitle)
}

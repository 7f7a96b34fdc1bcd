package config

type MailEncryption string

const (
	MailEncryptionNone     MailEncryption = "none"
	MailEncryptionTLS      MailEncryption = "tls"
	MailEncryptionStartTLS MailEncryption = "starttls"
)

type MailAuthType string

const (
	MailAuthPlain   MailAuthType = "plain"
	MailAuthLogin   MailAuthType = "login"
	MailAuthCramMD5 MailAuthType = "crammd5"
)

// MailConfig contains the configuration for the SMTP fault notifier.
type MailConfig struct {
	Host           string         `yaml:"host"`
	Port           int            `yaml:"port" validate:"gte=0,lte=65535"`
	Encryption     MailEncryption `yaml:"encryption" validate:"oneof=none tls starttls"`
	CertValidation bool           `yaml:"cert_validation"`
	Username       string         `yaml:"username"`
	Password       string         `yaml:"password"`
	AuthType       MailAuthType   `yaml:"auth_type" validate:"oneof=plain login crammd5"`

	// From is the sender address for notification mails.
	From string `yaml:"from"`
}

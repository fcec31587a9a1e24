// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// AppConfig provides the externally visible base URL used to build the
// accept/counter links embedded in offer emails.
type AppConfig interface {
	GetAppBaseURL() string
}

// EmailConfig provides settings shared by all mail delivery backends.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetBrevoAPIKey() string
}

// SMTPConfig provides settings for the SMTP delivery backend.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// GmailConfig provides settings for the Gmail API delivery backend.
type GmailConfig interface {
	GetGoogleToken() string
	GetGoogleTokenFile() string
	GetGoogleClientID() string
	GetGoogleClientSecret() string
}

// GotenbergConfig provides settings for the Gotenberg HTML-to-PDF service.
type GotenbergConfig interface {
	GetGotenbergURL() string
	GetGotenbergUsername() string
	GetGotenbergPassword() string
	IsGotenbergEnabled() bool
}

// CRMConfig provides settings for the outbound CRM webhook.
type CRMConfig interface {
	GetCRMWebhookURL() string
	IsCRMEnabled() bool
}

// OffersConfig provides settings for the offer submission workflow.
type OffersConfig interface {
	AppConfig
	GetOffersDir() string
	GetTeamEmail() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	AppBaseURL         string
	OffersDir          string
	TeamEmail          string
	EmailEnabled       bool
	EmailProvider      string
	EmailFromName      string
	EmailFromAddress   string
	BrevoAPIKey        string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	GoogleToken        string
	GoogleTokenFile    string
	GoogleClientID     string
	GoogleClientSecret string
	GotenbergURL       string
	GotenbergUsername  string
	GotenbergPassword  string
	CRMWebhookURL      string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// AppConfig implementation
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string     { return c.SMTPHost }
func (c *Config) GetSMTPPort() int        { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string { return c.SMTPPassword }

// GmailConfig implementation
func (c *Config) GetGoogleToken() string        { return c.GoogleToken }
func (c *Config) GetGoogleTokenFile() string    { return c.GoogleTokenFile }
func (c *Config) GetGoogleClientID() string     { return c.GoogleClientID }
func (c *Config) GetGoogleClientSecret() string { return c.GoogleClientSecret }

// GotenbergConfig implementation
func (c *Config) GetGotenbergURL() string      { return c.GotenbergURL }
func (c *Config) GetGotenbergUsername() string { return c.GotenbergUsername }
func (c *Config) GetGotenbergPassword() string { return c.GotenbergPassword }
func (c *Config) IsGotenbergEnabled() bool     { return c.GotenbergURL != "" }

// CRMConfig implementation
func (c *Config) GetCRMWebhookURL() string { return c.CRMWebhookURL }
func (c *Config) IsCRMEnabled() bool       { return c.CRMWebhookURL != "" }

// OffersConfig implementation
func (c *Config) GetOffersDir() string { return c.OffersDir }
func (c *Config) GetTeamEmail() string { return c.TeamEmail }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	emailProvider := strings.ToLower(getEnv("EMAIL_PROVIDER", "brevo"))
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		OffersDir:          getEnv("OFFERS_DIR", "offers"),
		TeamEmail:          getEnv("OFFERS_TEAM_EMAIL", ""),
		EmailEnabled:       emailEnabled,
		EmailProvider:      emailProvider,
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "CC Invest RE Team"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", ""),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		GoogleToken:        getEnv("GOOGLE_TOKEN", ""),
		GoogleTokenFile:    getEnv("GOOGLE_TOKEN_FILE", "token.json"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GotenbergURL:       getEnv("GOTENBERG_URL", ""),
		GotenbergUsername:  getEnv("GOTENBERG_USERNAME", ""),
		GotenbergPassword:  getEnv("GOTENBERG_PASSWORD", ""),
		CRMWebhookURL:      getEnv("CRM_WEBHOOK_URL", ""),
	}

	if cfg.GotenbergURL == "" {
		return nil, fmt.Errorf("GOTENBERG_URL is required")
	}
	if cfg.EmailEnabled {
		if cfg.EmailFromAddress == "" {
			return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
		}
		switch cfg.EmailProvider {
		case "brevo":
			if cfg.BrevoAPIKey == "" {
				return nil, fmt.Errorf("BREVO_API_KEY is required when EMAIL_PROVIDER is brevo")
			}
		case "smtp":
			if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
				return nil, fmt.Errorf("SMTP_HOST, SMTP_USERNAME and SMTP_PASSWORD are required when EMAIL_PROVIDER is smtp")
			}
		case "gmail":
			if cfg.GoogleToken == "" && cfg.GoogleTokenFile == "" {
				return nil, fmt.Errorf("GOOGLE_TOKEN or GOOGLE_TOKEN_FILE is required when EMAIL_PROVIDER is gmail")
			}
		default:
			return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q (expected gmail, smtp or brevo)", cfg.EmailProvider)
		}
	}
	if cfg.TeamEmail == "" {
		cfg.TeamEmail = cfg.EmailFromAddress
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

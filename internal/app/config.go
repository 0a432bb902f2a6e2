package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ppx123-web/wechat-article/internal/datasources/mptext"
	"github.com/ppx123-web/wechat-article/internal/domain"
)

const DefaultAccountsFile = "followed_accounts.json"

type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Auth drivers accepted in AUTH_DRIVERS.
const (
	AuthDriverAuth0 = "auth0"
	AuthDriverToken = "token"
)

// Config is loaded once at startup and not modified afterwards.
type Config struct {
	APIKey       string
	APIBaseURL   string
	AccountsPath string
	Location     *time.Location
	LogLevel     slog.Level

	Transport         Transport
	Port              int
	TLSDisabled       bool
	AutocertHostnames []string
	RSSFeedBaseURL    string

	// AuthDrivers protect the http transport; empty leaves it open.
	AuthDrivers   []string
	Auth0Domain   string
	Auth0Audience string
	AuthTokens    []string
}

// LoadConfig reads the configuration from the environment. Every failure is
// a *domain.ConfigError.
func LoadConfig() (Config, error) {
	var cfg Config
	var err error

	if cfg.APIKey, err = RequireEnvAsString("WECHAT_API_KEY"); err != nil {
		return Config{}, err
	}

	accountsPath := GetEnvAsString("WECHAT_FOLLOWED_ACCOUNTS_PATH", DefaultAccountsFile)
	if cfg.AccountsPath, err = filepath.Abs(accountsPath); err != nil {
		return Config{}, &domain.ConfigError{
			Variable: "WECHAT_FOLLOWED_ACCOUNTS_PATH",
			Reason:   fmt.Sprintf("unable to resolve [%s]: %v", accountsPath, err),
		}
	}

	cfg.APIBaseURL = GetEnvAsString("WECHAT_API_BASE_URL", mptext.DefaultBaseURL)

	if cfg.Location, err = GetEnvAsLocation("WECHAT_TIMEZONE"); err != nil {
		return Config{}, err
	}

	logLevel := GetEnvAsString("LOG_LEVEL", "INFO")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, &domain.ConfigError{Variable: "LOG_LEVEL", Reason: fmt.Sprintf("level [%s] not recognised", logLevel)}
	}

	switch t := Transport(GetEnvAsString("MCP_TRANSPORT", string(TransportStdio))); t {
	case TransportStdio, TransportHTTP:
		cfg.Transport = t
	default:
		return Config{}, &domain.ConfigError{
			Variable: "MCP_TRANSPORT",
			Reason:   fmt.Sprintf("unsupported transport [%s], expected 'stdio' or 'http'", t),
		}
	}

	if cfg.Port, err = GetEnvAsInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.TLSDisabled, err = GetEnvAsBoolean("HTTP_TLS_DISABLED", true); err != nil {
		return Config{}, err
	}
	cfg.AutocertHostnames = GetEnvAsStrings("HTTP_AUTOCERT_HOSTNAMES")
	if cfg.Transport == TransportHTTP && !cfg.TLSDisabled && len(cfg.AutocertHostnames) == 0 {
		return Config{}, &domain.ConfigError{
			Variable: "HTTP_AUTOCERT_HOSTNAMES",
			Reason:   "required when HTTP_TLS_DISABLED is false",
		}
	}

	cfg.RSSFeedBaseURL = GetEnvAsString("RSS_FEED_BASE_URL", fmt.Sprintf("http://localhost:%d", cfg.Port))

	if err := loadAuthConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadAuthConfig(cfg *Config) error {
	var err error

	cfg.AuthDrivers = GetEnvAsStrings("AUTH_DRIVERS")
	for _, driver := range cfg.AuthDrivers {
		switch driver {
		case AuthDriverAuth0:
			if cfg.Auth0Domain, err = RequireEnvAsString("AUTH0_DOMAIN"); err != nil {
				return err
			}
			if cfg.Auth0Audience, err = RequireEnvAsString("AUTH0_AUDIENCE"); err != nil {
				return err
			}
		case AuthDriverToken:
			cfg.AuthTokens = GetEnvAsStrings("HTTP_AUTH_TOKENS")
			if len(cfg.AuthTokens) == 0 {
				return &domain.ConfigError{
					Variable: "HTTP_AUTH_TOKENS",
					Reason:   "required when AUTH_DRIVERS includes 'token'",
				}
			}
		default:
			return &domain.ConfigError{
				Variable: "AUTH_DRIVERS",
				Reason:   fmt.Sprintf("unknown auth driver [%s]", driver),
			}
		}
	}

	return nil
}

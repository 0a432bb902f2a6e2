// Package main provides the entry point for the WeChat article MCP server.
//
// The server lets AI agents search WeChat public accounts, list and download
// their articles, and keep a small list of followed accounts on disk.
//
// Configuration:
//
//	WECHAT_API_KEY                 - API key for the article API (required)
//	WECHAT_FOLLOWED_ACCOUNTS_PATH  - followed accounts file (default: followed_accounts.json)
//	WECHAT_API_BASE_URL            - API base URL (default: https://down.mptext.top/api/public/v1)
//	WECHAT_TIMEZONE                - zone used to interpret start_date (default: local)
//	MCP_TRANSPORT                  - stdio (default) or http
//	PORT, HTTP_TLS_DISABLED, HTTP_AUTOCERT_HOSTNAMES, RSS_FEED_BASE_URL - http transport
//	AUTH_DRIVERS                   - comma-separated http auth drivers: auth0, token (default: none)
//	AUTH0_DOMAIN, AUTH0_AUDIENCE   - required by the auth0 driver
//	HTTP_AUTH_TOKENS               - comma-separated bearer tokens for the token driver
//	LOG_LEVEL                      - slog level (default: INFO)
//
// Usage with Claude Code:
//
//	claude mcp add wechat-article --transport stdio \
//	  --env WECHAT_API_KEY=xxx \
//	  -- /path/to/wechat-article-mcp
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppx123-web/wechat-article/cmd/mcp/server"
	"github.com/ppx123-web/wechat-article/internal/app"
	"github.com/ppx123-web/wechat-article/internal/command"
	"github.com/ppx123-web/wechat-article/internal/datasources/jsonfile"
	"github.com/ppx123-web/wechat-article/internal/datasources/mptext"
	"github.com/ppx123-web/wechat-article/internal/domain"
	"github.com/ppx123-web/wechat-article/internal/transport/web/router"
	webserver "github.com/ppx123-web/wechat-article/internal/transport/web/server"
)

import _ "github.com/joho/godotenv/autoload"

const rssCacheMaxAge = 15 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		// Logging is not configured yet; stdout belongs to the MCP transport.
		fmt.Fprintf(os.Stderr, "unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	components, err := setup(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup components", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, components); err != nil {
		logger.ErrorContext(ctx, "shutting down due to error", "error", err)
		os.Exit(1)
	}
}

func setup(ctx context.Context, cfg app.Config, logger *slog.Logger) ([]app.Component, error) {
	client := mptext.NewClient(cfg.APIBaseURL, cfg.APIKey)
	accounts := jsonfile.NewAccountStore(cfg.AccountsPath)
	articles := command.NewListAccountArticles(client, cfg.Location)

	srv := server.NewServer(server.Deps{
		Accounts:   accounts,
		Searcher:   client,
		Downloader: client,
		Articles:   articles,
		Logger:     logger,
	})

	logger.InfoContext(ctx, "configured",
		"transport", cfg.Transport,
		"accountsPath", cfg.AccountsPath,
		"apiBaseURL", cfg.APIBaseURL,
	)

	if cfg.Transport == app.TransportStdio {
		return []app.Component{srv}, nil
	}

	validators, err := setupAuthValidators(cfg)
	if err != nil {
		return nil, err
	}
	if len(validators) == 0 {
		logger.WarnContext(ctx, "http transport has no AUTH_DRIVERS configured, every route is open")
	}

	httpRouter, err := router.MakeRouter(
		logger,
		srv.HTTPHandler(),
		accounts,
		articles,
		cfg.RSSFeedBaseURL,
		rssCacheMaxAge,
		validators,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []app.Component{
		&webserver.Server{
			TLSDisabled:       cfg.TLSDisabled,
			TLSDisabledPort:   cfg.Port,
			AutocertHostnames: cfg.AutocertHostnames,
			Router:            httpRouter,
		},
	}, nil
}

func setupAuthValidators(cfg app.Config) ([]router.AuthValidator, error) {
	var validators []router.AuthValidator

	for _, driver := range cfg.AuthDrivers {
		switch driver {
		case app.AuthDriverAuth0:
			v, err := router.NewAuth0Validator(cfg.Auth0Domain, cfg.Auth0Audience)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case app.AuthDriverToken:
			validators = append(validators, router.NewTokenValidator(cfg.AuthTokens))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return validators, nil
}

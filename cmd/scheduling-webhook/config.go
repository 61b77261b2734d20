// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/acuity"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
)

// flags are the command line flags for the scheduling webhook service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the scheduling webhook service.
type environment struct {
	Port                string
	NatsURL             string
	Namespace           string
	ProductionNamespace string
	QANamespace         string
	DevNamespace        string
	AcuityAccounts      map[string]acuity.Credentials
	Zendesk             zendeskConfig
	Portal              portalConfig
	SegmentWriteKey     string
	SentryDSN           string
}

// zendeskConfig holds ticket system configuration
type zendeskConfig struct {
	Subdomain string
	Email     string
	APIToken  string
}

// portalConfig holds candidate portal configuration
type portalConfig struct {
	BaseURL string
	APIKey  string
}

// parseFlags parses command line flags for the scheduling webhook service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the scheduling webhook service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	namespace := os.Getenv("CURRENT_NAMESPACE")
	if namespace == "" {
		slog.Error("CURRENT_NAMESPACE environment variable is required but not set")
		os.Exit(1)
	}

	productionNamespace := os.Getenv("PRODUCTION_NAMESPACE")
	if productionNamespace == "" {
		productionNamespace = "production"
	}
	qaNamespace := os.Getenv("QA_NAMESPACE")
	if qaNamespace == "" {
		qaNamespace = "qa"
	}
	devNamespace := os.Getenv("DEV_NAMESPACE")
	if devNamespace == "" {
		devNamespace = "dev"
	}

	return environment{
		Port:                port,
		NatsURL:             natsURL,
		Namespace:           namespace,
		ProductionNamespace: productionNamespace,
		QANamespace:         qaNamespace,
		DevNamespace:        devNamespace,
		AcuityAccounts:      parseAcuityAccounts(),
		Zendesk:             parseZendeskConfig(),
		Portal:              parsePortalConfig(),
		SegmentWriteKey:     os.Getenv("SEGMENT_WRITE_KEY"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
	}
}

// parseAcuityAccounts parses the ACUITY_API_ACCOUNTS environment variable.
// The format is a comma-separated list of "account_name=user_id:api_key".
func parseAcuityAccounts() map[string]acuity.Credentials {
	raw := os.Getenv("ACUITY_API_ACCOUNTS")
	if raw == "" {
		slog.Error("ACUITY_API_ACCOUNTS environment variable is required but not set")
		os.Exit(1)
	}

	accounts := make(map[string]acuity.Credentials)
	for _, entry := range strings.Split(raw, ",") {
		name, credentials, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok {
			slog.With("entry", entry).Error("invalid ACUITY_API_ACCOUNTS entry, expected account_name=user_id:api_key")
			os.Exit(1)
		}
		userID, apiKey, ok := strings.Cut(credentials, ":")
		if !ok {
			slog.With("entry", entry).Error("invalid ACUITY_API_ACCOUNTS entry, expected account_name=user_id:api_key")
			os.Exit(1)
		}
		accounts[name] = acuity.Credentials{UserID: userID, APIKey: apiKey}
	}

	return accounts
}

// parseZendeskConfig parses ticket system configuration from environment variables
func parseZendeskConfig() zendeskConfig {
	subdomain := os.Getenv("ZENDESK_SUBDOMAIN")
	if subdomain == "" {
		slog.Error("ZENDESK_SUBDOMAIN environment variable is required but not set")
		os.Exit(1)
	}

	email := os.Getenv("ZENDESK_EMAIL")
	if email == "" {
		slog.Error("ZENDESK_EMAIL environment variable is required but not set")
		os.Exit(1)
	}

	apiToken := os.Getenv("ZENDESK_API_TOKEN")
	if apiToken == "" {
		slog.Error("ZENDESK_API_TOKEN environment variable is required but not set")
		os.Exit(1)
	}

	return zendeskConfig{
		Subdomain: subdomain,
		Email:     email,
		APIToken:  apiToken,
	}
}

// parsePortalConfig parses candidate portal configuration from environment variables
func parsePortalConfig() portalConfig {
	baseURL := os.Getenv("CANDIDATE_PORTAL_URL")
	if baseURL == "" {
		slog.Error("CANDIDATE_PORTAL_URL environment variable is required but not set")
		os.Exit(1)
	}

	return portalConfig{
		BaseURL: baseURL,
		APIKey:  os.Getenv("CANDIDATE_PORTAL_API_KEY"),
	}
}

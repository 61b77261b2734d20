// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package main is the scheduling webhook service. It receives appointment
// webhooks from the calendaring service and reconciles them with the hiring
// pipeline: talent records, contacts, support tickets, and analytics.
package main

import (
	"context"
	_ "expvar"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hirewire/scheduling-webhook-service/internal/handlers"
	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/acuity"
	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/monitoring"
	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/portal"
	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/segment"
	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/zendesk"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
	"github.com/hirewire/scheduling-webhook-service/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	errorReporter, err := monitoring.NewSentryReporter(env.SentryDSN, env.Namespace)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up error monitoring")
		os.Exit(1)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value stores for the service.
	repos, err := getKeyValueStores(ctx, natsConn, env)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// Initialize external service clients
	acuityClient := acuity.NewClient(acuity.Config{
		Accounts: env.AcuityAccounts,
	})
	zendeskClient := zendesk.NewClient(zendesk.Config{
		Subdomain: env.Zendesk.Subdomain,
		Email:     env.Zendesk.Email,
		APIToken:  env.Zendesk.APIToken,
	})
	portalClient := portal.NewClient(portal.Config{
		BaseURL: env.Portal.BaseURL,
		APIKey:  env.Portal.APIKey,
	})
	analyticsTracker, err := segment.NewTrackerWithWriteKey(env.SegmentWriteKey)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up analytics tracking")
		return
	}

	// Initialize services
	serviceConfig := service.ServiceConfig{
		Namespace:           env.Namespace,
		ProductionNamespace: env.ProductionNamespace,
		QANamespace:         env.QANamespace,
		DevNamespace:        env.DevNamespace,
	}
	webhookService := service.NewWebhookService(
		acuityClient,
		repos.Job,
		repos.Talent,
		repos.Contact,
		repos.Application,
		repos.Analytics,
		zendeskClient,
		portalClient,
		analyticsTracker,
		errorReporter,
		serviceConfig,
	)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(webhookService, errorReporter)

	httpServer := setupHTTPServer(flags, webhookHandler, natsConn, &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)

	if err := analyticsTracker.Close(); err != nil {
		slog.With(logging.ErrKey, err).Error("error flushing analytics events")
	}
	errorReporter.Flush()
}

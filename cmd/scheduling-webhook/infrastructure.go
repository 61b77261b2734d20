// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/hirewire/scheduling-webhook-service/internal/infrastructure/store"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
)

const (
	natsConnectTimeout  = 10 * time.Second
	natsShutdownTimeout = 5 * time.Second
	httpShutdownTimeout = 10 * time.Second
)

// setupNATS establishes the NATS connection used for the key-value stores.
// The connection is drained on shutdown; an unexpected close signals the
// shutdown channel so the process can exit.
func setupNATS(env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	gracefulCloseWG.Add(1)
	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(natsShutdownTimeout),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.With("nats_url", env.NatsURL).Info("NATS connection established")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			slog.With(logging.ErrKey, err).Error("NATS error")
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			gracefulCloseWG.Done()
			if err := conn.LastError(); err != nil {
				slog.With(logging.ErrKey, err).Error("NATS connection closed with error", logging.PriorityCritical())
				done <- os.Interrupt
			}
		}),
		nats.Timeout(natsConnectTimeout),
	)
	if err != nil {
		gracefulCloseWG.Done()
		return nil, err
	}

	return natsConn, nil
}

// repositories bundles the key-value store repositories of the service.
type repositories struct {
	Job         *store.NatsJobRepository
	Talent      *store.NatsTalentRepository
	Contact     *store.NatsContactRepository
	Application *store.NatsApplicationRepository
	Analytics   *store.NatsAnalyticsRepository
}

// getKeyValueStores binds the namespaced key-value buckets and builds the
// repositories on top of them. The job repository additionally gets the QA
// and dev job buckets for the cross-environment probe.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn, env environment) (*repositories, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		return nil, err
	}

	bucket := func(namespace, baseName string) (jetstream.KeyValue, error) {
		return js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket: store.BucketName(namespace, baseName),
		})
	}

	jobs, err := bucket(env.Namespace, store.KVStoreNameJobs)
	if err != nil {
		return nil, err
	}
	talent, err := bucket(env.Namespace, store.KVStoreNameTalent)
	if err != nil {
		return nil, err
	}
	contacts, err := bucket(env.Namespace, store.KVStoreNameContacts)
	if err != nil {
		return nil, err
	}
	applications, err := bucket(env.Namespace, store.KVStoreNameApplications)
	if err != nil {
		return nil, err
	}
	analyticsEvents, err := bucket(env.Namespace, store.KVStoreNameAnalyticsEvents)
	if err != nil {
		return nil, err
	}

	// Production needs read access to the QA and dev job buckets for the
	// unknown-job policy. Other namespaces never probe them.
	otherNamespaces := make(map[string]store.INatsKeyValue)
	if env.Namespace == env.ProductionNamespace {
		for _, namespace := range []string{env.QANamespace, env.DevNamespace} {
			kv, err := bucket(namespace, store.KVStoreNameJobs)
			if err != nil {
				return nil, err
			}
			otherNamespaces[namespace] = kv
		}
	}

	return &repositories{
		Job:         store.NewNatsJobRepository(jobs, otherNamespaces),
		Talent:      store.NewNatsTalentRepository(talent),
		Contact:     store.NewNatsContactRepository(contacts),
		Application: store.NewNatsApplicationRepository(applications),
		Analytics:   store.NewNatsAnalyticsRepository(analyticsEvents),
	}, nil
}

// gracefulShutdown drains the HTTP server and the NATS connection, then waits
// for the graceful-close wait group.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	if natsConn != nil && !natsConn.IsClosed() {
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
			natsConn.Close()
		}
	}

	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}

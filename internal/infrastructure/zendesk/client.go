// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package zendesk provides the support-ticket client used to annotate and
// resolve candidate tickets.
package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

// DefaultClientTimeout is the default HTTP client timeout for ticket API requests
const DefaultClientTimeout = 30 * time.Second

// Config holds the configuration for the ticket client
type Config struct {
	// Subdomain of the ticket system tenant, e.g. "hirewire"
	Subdomain string
	// Email of the API user
	Email string
	// APIToken used with the email for basic auth
	APIToken string
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Client represents the support-ticket API client
type Client struct {
	httpClient *http.Client
	config     Config
}

// Ensure that Client implements the ticket client port
var _ domain.TicketClient = (*Client)(nil)

// NewClient creates a new support-ticket API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = fmt.Sprintf("https://%s.zendesk.com/api/v2", config.Subdomain)
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultClientTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// ticketEnvelope is the wire envelope the ticket API wraps tickets in.
type ticketEnvelope struct {
	Ticket *models.Ticket `json:"ticket"`
}

// resolveRequest is the payload of the resolve operation.
type resolveRequest struct {
	Language string `json:"language"`
	Reason   string `json:"reason,omitempty"`
}

// GetTicket retrieves a ticket by its id.
func (c *Client) GetTicket(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d.json", ticketID), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(ctx, resp, "get ticket")
	}

	var envelope ticketEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Ticket == nil {
		return nil, errs.NewInternalError("failed to decode ticket response", err)
	}

	return envelope.Ticket, nil
}

// UpdateTicket persists all in-memory mutations of a ticket (comment, status,
// tags, custom fields) with a single update call.
func (c *Client) UpdateTicket(ctx context.Context, ticket *models.Ticket) error {
	resp, err := c.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("/tickets/%d.json", ticket.ID), ticketEnvelope{Ticket: ticket})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(ctx, resp, "update ticket")
	}

	slog.DebugContext(ctx, "ticket updated",
		"ticket_id", ticket.ID,
		"status", ticket.Status,
		"tags", ticket.Tags,
	)
	return nil
}

// ResolveTicket closes a ticket through the ticket system's resolve operation,
// which also sends the candidate the localized closing message. The in-memory
// ticket is marked solved so a later update does not reopen it.
func (c *Client) ResolveTicket(ctx context.Context, ticket *models.Ticket, language, reason string) error {
	resp, err := c.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("/tickets/%d/resolve.json", ticket.ID),
		resolveRequest{Language: language, Reason: reason})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(ctx, resp, "resolve ticket")
	}

	ticket.Status = constants.TicketStatusSolved

	slog.InfoContext(ctx, "ticket resolved",
		"ticket_id", ticket.ID,
		"language", language,
		"reason", reason,
	)
	return nil
}

// doRequest performs an authenticated HTTP request to the ticket API
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errs.NewInternalError("failed to marshal ticket request body", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return nil, errs.NewInternalError("failed to create ticket API request", err)
	}
	req.SetBasicAuth(c.config.Email+"/token", c.config.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "ticket API request failed",
			"method", method,
			"path", path,
			logging.ErrKey, err)
		return nil, errs.NewUnavailableError("failed to reach ticket API", err)
	}

	return resp, nil
}

// errorFromResponse reads an error response body and wraps it as an internal error
func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response, operation string) error {
	body, _ := io.ReadAll(resp.Body)
	slog.ErrorContext(ctx, "ticket API error response",
		"operation", operation,
		"status", resp.StatusCode,
		"body", string(body),
		logging.ErrKey, fmt.Errorf("status: %d", resp.StatusCode))
	return errs.NewInternalError(
		fmt.Sprintf("ticket API %s failed with status %d", operation, resp.StatusCode))
}

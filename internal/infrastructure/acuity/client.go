// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package acuity provides a read-only client for the Acuity Scheduling API.
package acuity

import (
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
)

const (
	// BaseURL is the base URL for the Acuity Scheduling API
	BaseURL = "https://acuityscheduling.com/api/v1"
	// DefaultClientTimeout is the default HTTP client timeout for Acuity API requests
	DefaultClientTimeout = 30 * time.Second
)

// Credentials holds the HTTP basic auth credentials for one Acuity account.
type Credentials struct {
	UserID string
	APIKey string
}

// Config holds the configuration for the Acuity client
type Config struct {
	// Accounts maps the webhook account name to that account's credentials.
	Accounts map[string]Credentials
	// Optional: override base URL for testing
	BaseURL string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Client represents an Acuity Scheduling API client. Appointment fetches are
// performed once per webhook delivery; Acuity redelivers the webhook itself,
// so failed requests are not retried here.
type Client struct {
	httpClient *http.Client
	config     Config
}

// Ensure that Client implements the appointment fetcher port
var _ domain.AppointmentFetcher = (*Client)(nil)

// NewClient creates a new Acuity Scheduling API client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
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

// GetAppointment retrieves the full appointment details for the account that
// delivered the webhook.
func (c *Client) GetAppointment(ctx context.Context, accountName string, appointmentID int64) (*models.Appointment, error) {
	credentials, ok := c.config.Accounts[accountName]
	if !ok {
		return nil, errs.NewValidationError(fmt.Sprintf("no Acuity credentials configured for account %q", accountName))
	}

	url := fmt.Sprintf("%s/appointments/%d", c.config.BaseURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewInternalError("failed to create Acuity API request", err)
	}
	req.SetBasicAuth(credentials.UserID, credentials.APIKey)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		slog.ErrorContext(ctx, "Acuity API request failed",
			"account_name", accountName,
			"appointment_id", appointmentID,
			"duration", duration.String(),
			logging.ErrKey, err)
		return nil, errs.NewUnavailableError("failed to reach Acuity API", err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.DebugContext(ctx, "Acuity API request completed",
		"account_name", accountName,
		"appointment_id", appointmentID,
		"status", resp.StatusCode,
		"duration", duration.String(),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.ErrorContext(ctx, "Acuity API error response",
			"account_name", accountName,
			"appointment_id", appointmentID,
			"status", resp.StatusCode,
			"body", string(body),
			logging.ErrKey, fmt.Errorf("status: %d", resp.StatusCode))
		if resp.StatusCode == http.StatusNotFound {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("appointment %d not found in Acuity account %q", appointmentID, accountName))
		}
		return nil, errs.NewInternalError(parseErrorResponse(body).Error())
	}

	var appointment models.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, errs.NewInternalError("failed to decode Acuity appointment response", err)
	}

	return &appointment, nil
}

// parseErrorResponse attempts to parse an Acuity API error response
func parseErrorResponse(body []byte) error {
	var errResp struct {
		StatusCode int    `json:"status_code"`
		ErrorCode  string `json:"error"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("acuity API error (%s): %s", errResp.ErrorCode, errResp.Message)
	}
	return fmt.Errorf("acuity API error: %s", string(body))
}

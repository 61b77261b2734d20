// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package portal provides the client for the candidate onboarding portal.
package portal

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
)

// DefaultClientTimeout is the default HTTP client timeout for portal requests
const DefaultClientTimeout = 30 * time.Second

// Config holds the configuration for the candidate portal client
type Config struct {
	// BaseURL of the portal API
	BaseURL string
	// APIKey is sent as a bearer token
	APIKey string
	// Optional: override timeout for HTTP requests
	Timeout time.Duration
}

// Client represents the candidate portal API client
type Client struct {
	httpClient *http.Client
	config     Config
}

// Ensure that Client implements the candidate portal port
var _ domain.CandidatePortal = (*Client)(nil)

// NewClient creates a new candidate portal API client
func NewClient(config Config) *Client {
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

// RegisterCandidate registers a candidate in the portal at the given pipeline
// step so they can follow their own application.
func (c *Client) RegisterCandidate(ctx context.Context, registration domain.CandidatePortalRegistration) error {
	if err := c.doPost(ctx, "/candidates", registration); err != nil {
		return err
	}

	slog.InfoContext(ctx, "candidate registered in portal",
		"job_uid", registration.JobUID,
		"talent_uid", registration.LocalID,
		"step", registration.Step,
	)
	return nil
}

// personalityCheckRequest is the payload enabling a candidate's assessment.
type personalityCheckRequest struct {
	JobUID    string `json:"job_id"`
	TalentUID string `json:"talent_id"`
	OwnerID   string `json:"owner_id"`
	CompanyID string `json:"company_id"`
}

// EnablePersonalityCheck enables the personality assessment for a candidate
// on the given job.
func (c *Client) EnablePersonalityCheck(ctx context.Context, job *models.Job, talentUID string) error {
	request := personalityCheckRequest{
		JobUID:    job.UID,
		TalentUID: talentUID,
		OwnerID:   job.OwnerID,
		CompanyID: job.CompanyID,
	}
	if err := c.doPost(ctx, "/personality-checks", request); err != nil {
		return err
	}

	slog.InfoContext(ctx, "personality check enabled",
		"job_uid", job.UID,
		"talent_uid", talentUID,
	)
	return nil
}

// doPost performs an authenticated POST request to the portal API
func (c *Client) doPost(ctx context.Context, path string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return errs.NewInternalError("failed to marshal portal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return errs.NewInternalError("failed to create portal API request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "portal API request failed",
			"path", path,
			logging.ErrKey, err)
		return errs.NewUnavailableError("failed to reach candidate portal", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		slog.ErrorContext(ctx, "portal API error response",
			"path", path,
			"status", resp.StatusCode,
			"body", string(respBody),
			logging.ErrKey, fmt.Errorf("status: %d", resp.StatusCode))
		return errs.NewInternalError(
			fmt.Sprintf("portal API request to %s failed with status %d", path, resp.StatusCode))
	}

	return nil
}

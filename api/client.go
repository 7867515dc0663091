package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Supermarket-List/create-list/models"
)

// Generic fallbacks shown when the backend sends no usable error body.
const (
	msgRegisterFailed = "Erro ao cadastrar usuário."
	msgLoginFailed    = "Erro no login."
	msgFetchFailed    = "Erro ao buscar listas."
	msgSaveFailed     = "Erro ao salvar a lista."
	msgDeleteFailed   = "Erro ao excluir a lista."
)

// Error is returned for any failed round trip: transport failures, non-2xx
// statuses, and malformed success bodies. Message is user-facing, taken from
// the server's error body when possible. Status is 0 when no response was
// received.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client talks to the Supermarket List backend. All operations are single
// HTTP round trips bounded by the configured timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// Register creates a new user account and returns its identity.
func (c *Client) Register(ctx context.Context, nome, telefone, email string) (*models.User, error) {
	req := models.RegisterRequest{Nome: nome, Telefone: telefone, Email: email}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &resp, msgRegisterFailed); err != nil {
		return nil, err
	}

	return &models.User{ID: resp.ID.String(), Nome: resp.Nome}, nil
}

// Login authenticates an existing user by name and phone.
func (c *Client) Login(ctx context.Context, nome, telefone string) (*models.User, error) {
	req := models.LoginRequest{Nome: nome, Telefone: telefone}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp, msgLoginFailed); err != nil {
		return nil, err
	}

	return &models.User{ID: resp.ID.String(), Nome: resp.Nome}, nil
}

// ListsByUser fetches every persisted list owned by the given user.
func (c *Client) ListsByUser(ctx context.Context, userID string) ([]models.Lista, error) {
	path := "/api/listas?userId=" + url.QueryEscape(userID)

	var listas []models.Lista
	if err := c.do(ctx, http.MethodGet, path, nil, &listas, msgFetchFailed); err != nil {
		return nil, err
	}

	return listas, nil
}

// SaveList submits a complete draft as a new persisted list and returns the
// server-assigned list id.
func (c *Client) SaveList(ctx context.Context, userID string, req models.SaveListRequest) (int64, error) {
	path := "/api/listas?userId=" + url.QueryEscape(userID)

	var resp models.SaveListResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp, msgSaveFailed); err != nil {
		return 0, err
	}

	return resp.ListaID, nil
}

// DeleteList removes a persisted list by id.
func (c *Client) DeleteList(ctx context.Context, listaID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/listas/%d", listaID), nil, nil, msgDeleteFailed)
}

// do performs one round trip: marshal body, send with Content-Type and a
// fresh X-Request-ID, enforce the timeout, map non-2xx to *Error, decode the
// success body into out (skipped when out is nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return &Error{Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractError(resp.Body, fallback)
		slog.Error("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestID,
			"message", msg,
		)
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Error("failed to decode response",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return &Error{Status: resp.StatusCode, Message: fallback}
	}

	return nil
}

// extractError pulls a message out of the backend's error envelope. The
// users/login endpoints fill "message", the listas endpoints fill "error";
// an absent or malformed body yields the fallback.
func extractError(r io.Reader, fallback string) string {
	var body models.ErrorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return fallback
	}
	if body.Message != "" {
		return body.Message
	}
	if body.Error != "" {
		return body.Error
	}
	return fallback
}

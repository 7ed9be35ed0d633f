// Package client ofrece servicios HTTP tipados contra la API del estudio y el
// contenedor de estado de sesión que comparten los front ends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client envuelve el transporte HTTP hacia la API.
type Client struct {
	baseURL string
	http    *http.Client
	state   *SessionState
}

// APIError representa una respuesta no exitosa de la API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%q", e.Status, e.Message)
}

// New construye un cliente apuntando a baseURL. El token de autorización se
// toma del estado de sesión en cada request.
func New(baseURL string, state *SessionState) *Client {
	if state == nil {
		state = NewSessionState()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		state:   state,
	}
}

// State expone el contenedor de sesión asociado al cliente.
func (c *Client) State() *SessionState {
	return c.state
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if info, logged := c.state.Snapshot(); logged && info.Token != "" {
		req.Header.Set("Authorization", "Bearer "+info.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

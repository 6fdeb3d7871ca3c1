package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// BackendError is a non-2xx answer of the API.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
}

type Health struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Device string `json:"device"`
}

type Transcription struct {
	Text     string             `json:"text"`
	Keywords []string           `json:"keywords"`
	Timings  map[string]float64 `json:"timings"`
}

// Client talks to the voicebot API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	healthTimeout time.Duration
}

func NewClient(baseURL string, healthTimeout, requestTimeout time.Duration) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: requestTimeout},
		healthTimeout: healthTimeout,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	var h Health
	if err := c.do(req, &h); err != nil {
		return nil, err
	}

	return &h, nil
}

func (c *Client) Transcribe(ctx context.Context, filename, contentType string, audio io.Reader) (*Transcription, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var t Transcription
	if err := c.do(req, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &e) != nil || e.Detail == "" {
			e.Detail = strings.TrimSpace(string(data))
		}
		return &BackendError{Status: resp.StatusCode, Detail: e.Detail}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Join(fmt.Errorf("invalid response from %s", req.URL.Path), err)
	}

	return nil
}

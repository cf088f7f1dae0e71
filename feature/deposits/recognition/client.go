package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deposit-desk/core/money"

	"github.com/go-resty/resty/v2"
)

// Config holds configuration for the recognition API client.
type Config struct {
	// Endpoint is the base URL of the recognition service.
	Endpoint string `mapstructure:"endpoint" default:""`
	// ApiKey authenticates against the recognition service.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds a single recognition call. Vision models are
	// slow; the default is deliberately generous.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Candidate is the single {depositor name, amount} pair the recognition
// service extracts from one evidence artifact.
type Candidate struct {
	DepositorName string `json:"depositor_name"`
	Amount        int    `json:"amount"`
}

// Client calls the external transfer-notice recognition API.
type Client interface {
	// RecognizeImage submits a bank-transfer screenshot.
	RecognizeImage(ctx context.Context, filename string, image []byte) (Candidate, error)
	// RecognizeText submits a free-text transfer notice.
	RecognizeText(ctx context.Context, text string) (Candidate, error)
}

// recognizeResponse is the wire shape of the service's answer. The amount
// comes back as the raw string the model read ("72,000원"), so it is parsed
// with the tolerant money parser.
type recognizeResponse struct {
	DepositorName string `json:"depositor_name"`
	Amount        string `json:"amount"`
}

type restyClient struct {
	http *resty.Client
}

// NewClient creates a recognition client for the configured endpoint.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	c := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(time.Duration(timeout) * time.Second)
	if cfg.ApiKey != "" {
		c.SetHeader("Authorization", "Bearer "+cfg.ApiKey)
	}

	return &restyClient{http: c}
}

func (c *restyClient) RecognizeImage(ctx context.Context, filename string, image []byte) (Candidate, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(image)).
		Post("/v1/recognize")
	if err != nil {
		return Candidate{}, fmt.Errorf("recognition request failed: %w", err)
	}

	return parseResponse(resp)
}

func (c *restyClient) RecognizeText(ctx context.Context, text string) (Candidate, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		Post("/v1/recognize")
	if err != nil {
		return Candidate{}, fmt.Errorf("recognition request failed: %w", err)
	}

	return parseResponse(resp)
}

func parseResponse(resp *resty.Response) (Candidate, error) {
	if resp.StatusCode() != http.StatusOK {
		return Candidate{}, fmt.Errorf("recognition request status: %d", resp.StatusCode())
	}

	var answer recognizeResponse
	if err := json.Unmarshal(resp.Body(), &answer); err != nil {
		return Candidate{}, fmt.Errorf("failed to decode recognition response: %w", err)
	}

	if answer.DepositorName == "" {
		return Candidate{}, fmt.Errorf("recognition returned no depositor name")
	}

	amount, err := money.ParseAmount(answer.Amount)
	if err != nil {
		return Candidate{}, fmt.Errorf("recognition returned unusable amount: %w", err)
	}
	if amount <= 0 {
		return Candidate{}, fmt.Errorf("recognition returned non-positive amount: %d", amount)
	}

	return Candidate{DepositorName: answer.DepositorName, Amount: amount}, nil
}

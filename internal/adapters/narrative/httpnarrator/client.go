package httpnarrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-crate-compliance/internal/platform/httpclient"
	"pet-crate-compliance/internal/ports/narrative"
)

var (
	ErrNarratorNotConfigured = errors.New("narrator not configured")
	ErrNarratorUnauthorized  = errors.New("narrator unauthorized")
	ErrNarratorUpstream      = errors.New("narrator upstream error")
)

const narratePath = "/v1/crate-narratives"

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration

	Transport http.RoundTripper
}

// Client implementa narrative.Generator contra un servicio HTTP externo.
// Solo manda hechos ya calculados; la respuesta es texto libre.
type Client struct {
	http *httpclient.Client
}

var _ narrative.Generator = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrNarratorNotConfigured
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   timeout,
		Headers:   map[string]string{header: strings.TrimSpace(cfg.APIKey)},
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type narrateRequest struct {
	Facts narrative.Facts `json:"facts"`
}

type narrateResponse struct {
	ComfortAnalysis string `json:"comfort_analysis"`
	AirlineWarning  string `json:"airline_warning"`
	ProTip          string `json:"pro_tip"`
}

func (c *Client) Narrate(ctx context.Context, in narrative.Facts) (narrative.Narrative, error) {
	if c == nil || c.http == nil {
		return narrative.Narrative{}, ErrNarratorNotConfigured
	}

	var out narrateResponse
	err := c.http.PostJSON(ctx, narratePath, narrateRequest{Facts: in}, &out)
	if err != nil {
		switch httpclient.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return narrative.Narrative{}, ErrNarratorUnauthorized
		default:
			return narrative.Narrative{}, fmt.Errorf("%w: %v", ErrNarratorUpstream, err)
		}
	}

	n := narrative.Narrative{
		ComfortAnalysis: strings.TrimSpace(out.ComfortAnalysis),
		AirlineWarning:  strings.TrimSpace(out.AirlineWarning),
		ProTip:          strings.TrimSpace(out.ProTip),
	}
	if n == (narrative.Narrative{}) {
		return narrative.Narrative{}, fmt.Errorf("%w: empty narrative", ErrNarratorUpstream)
	}
	return n, nil
}

package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// Provider is the external OCR service this engine calls. Implementations
// must honor context cancellation and deadlines.
type Provider interface {
	ExtractPaymentFields(ctx context.Context, image []byte, mimeType string) (ProviderResult, error)
}

// ProviderResult is the raw wire-level extraction. Amounts and dates stay as
// strings here; the extractor owns parsing them into domain types.
type ProviderResult struct {
	Amount     *string `json:"amount,omitempty"`
	Currency   *string `json:"currency,omitempty"`
	Bank       *string `json:"bank,omitempty"`
	Account    *string `json:"account,omitempty"`
	Date       *string `json:"date,omitempty"`
	Confidence int     `json:"confidence"`
}

type HTTPProviderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type HTTPProvider struct {
	cfg    HTTPProviderConfig
	client *http.Client
	logger *logger.Logger
}

func NewHTTPProvider(cfg HTTPProviderConfig, log *logger.Logger) *HTTPProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: log,
	}
}

type extractRequest struct {
	ImageBase64 string `json:"image_base64"`
	MIMEType    string `json:"mime_type"`
}

func (p *HTTPProvider) ExtractPaymentFields(ctx context.Context, image []byte, mimeType string) (ProviderResult, error) {
	start := time.Now()

	body, err := json.Marshal(extractRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
		MIMEType:    mimeType,
	})
	if err != nil {
		return ProviderResult{}, fmt.Errorf("encode extract request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	url := p.cfg.BaseURL + "/v1/payments/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ProviderResult{}, fmt.Errorf("build extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn(ctx, "OCR provider unreachable",
			"url", url,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		if errors.Is(err, context.Canceled) {
			return ProviderResult{}, err
		}
		// Timeouts and transport failures are retryable by the caller.
		return ProviderResult{}, fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ProviderResult{}, fmt.Errorf("%w: read response: %v", domain.ErrExtractionUnavailable, err)
	}

	p.logger.Debug(ctx, "OCR provider response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	switch {
	case resp.StatusCode >= 500:
		return ProviderResult{}, fmt.Errorf("%w: provider status %d", domain.ErrExtractionUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return ProviderResult{}, fmt.Errorf("%w: provider status %d", domain.ErrExtractionFailed, resp.StatusCode)
	}

	var result ProviderResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ProviderResult{}, fmt.Errorf("%w: decode response: %v", domain.ErrExtractionFailed, err)
	}

	return result, nil
}

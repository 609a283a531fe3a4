package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/pkg/logger"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *HTTPProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPProvider(HTTPProviderConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logger.NewNop())
}

func TestExtractPaymentFields_Success(t *testing.T) {
	image := []byte{0x89, 0x50, 0x4e, 0x47}

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments/extract", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			ImageBase64 string `json:"image_base64"`
			MIMEType    string `json:"mime_type"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), req.ImageBase64)
		assert.Equal(t, "image/png", req.MIMEType)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"amount":     "2499.99",
			"currency":   "USD",
			"bank":       "First National Bank",
			"account":    "1234567890",
			"confidence": 92,
		})
	})

	result, err := provider.ExtractPaymentFields(context.Background(), image, "image/png")

	require.NoError(t, err)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "2499.99", *result.Amount)
	assert.Equal(t, "First National Bank", *result.Bank)
	assert.Equal(t, 92, result.Confidence)
	assert.Nil(t, result.Date)
}

func TestExtractPaymentFields_ServerError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	})

	_, err := provider.ExtractPaymentFields(context.Background(), []byte{1}, "image/png")

	require.ErrorIs(t, err, domain.ErrExtractionUnavailable)
}

func TestExtractPaymentFields_ClientError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad image", http.StatusUnprocessableEntity)
	})

	_, err := provider.ExtractPaymentFields(context.Background(), []byte{1}, "image/png")

	require.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractPaymentFields_MalformedResponse(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := provider.ExtractPaymentFields(context.Background(), []byte{1}, "image/png")

	require.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractPaymentFields_Timeout(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	provider.cfg.Timeout = 50 * time.Millisecond

	_, err := provider.ExtractPaymentFields(context.Background(), []byte{1}, "image/png")

	require.ErrorIs(t, err, domain.ErrExtractionUnavailable)
}

func TestExtractPaymentFields_Unreachable(t *testing.T) {
	provider := NewHTTPProvider(HTTPProviderConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
	}, logger.NewNop())

	_, err := provider.ExtractPaymentFields(context.Background(), []byte{1}, "image/png")

	require.ErrorIs(t, err, domain.ErrExtractionUnavailable)
}

func TestExtractPaymentFields_CancelledContext(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.ExtractPaymentFields(ctx, []byte{1}, "image/png")

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrExtractionUnavailable)
}

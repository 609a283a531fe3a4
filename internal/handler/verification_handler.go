package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/internal/verification"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// maxScreenshotBytes bounds uploads before they reach the pipeline.
const maxScreenshotBytes = 10 << 20

type VerificationHandler struct {
	service *verification.Service
	logger  *logger.Logger
}

func NewVerificationHandler(service *verification.Service, log *logger.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: service,
		logger:  log,
	}
}

func (h *VerificationHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()
	invoiceID := c.Param("id")

	file, err := c.FormFile("screenshot")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "screenshot file is required",
		})
	}

	if file.Size > maxScreenshotBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
			"error": "screenshot too large",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open uploaded screenshot",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read screenshot",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxScreenshotBytes+1))
	if err != nil {
		h.logger.Error(ctx, "Failed to read uploaded screenshot",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read screenshot",
		})
	}

	screenshot := domain.PaymentScreenshot{
		InvoiceID: invoiceID,
		MIMEType:  file.Header.Get("Content-Type"),
		Size:      int64(len(content)),
		Content:   content,
	}

	attempt, err := h.service.Verify(ctx, invoiceID, screenshot)
	if err != nil {
		return h.verifyError(c, err)
	}

	return c.JSON(http.StatusOK, attempt)
}

// verifyError maps the error taxonomy onto HTTP classes the frontend keys
// off: retryable (503), fix-the-upload (400/415/422), wrong invoice state
// (404/409).
func (h *VerificationHandler) verifyError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	switch {
	case errors.Is(err, domain.ErrEmptyScreenshot):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "screenshot is empty",
		})
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{
			"error": "unsupported image type",
		})
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "invoice not found",
		})
	case errors.Is(err, domain.ErrInvoiceNotAwaitingPayment):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "invoice is not awaiting payment",
		})
	case errors.Is(err, domain.ErrExtractionUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "extraction temporarily unavailable, retry later",
		})
	case errors.Is(err, domain.ErrExtractionFailed):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "screenshot could not be processed, upload a different image",
		})
	default:
		h.logger.Error(ctx, "Verification failed",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "verification failed",
		})
	}
}

func (h *VerificationHandler) History(c echo.Context) error {
	ctx := c.Request().Context()
	invoiceID := c.Param("id")

	attempts, err := h.service.History(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "invoice not found",
			})
		}

		h.logger.Error(ctx, "Failed to load verification history",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to load verification history",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"invoice_id": invoiceID,
		"attempts":   attempts,
		"total":      len(attempts),
	})
}

package http

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taglens/backend/internal/domain"
	"github.com/taglens/backend/internal/usecase"
)

// maxUploadBytes caps price-tag image uploads at 10MB
const maxUploadBytes = 10 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction *usecase.ExtractionService
	billing    *usecase.BillingService
	store      domain.BillRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(extraction *usecase.ExtractionService, billing *usecase.BillingService, store domain.BillRepository) *Handler {
	return &Handler{
		extraction: extraction,
		billing:    billing,
		store:      store,
	}
}

// Root returns the API banner
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shop Billing OCR API",
	})
}

// Hello is a trivial connectivity check for frontend integration
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from the backend API!",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "taglens-backend",
		"version": "1.0.0",
	})
}

// Diagnostics reports whether the backend and its bill store are usable
func (h *Handler) Diagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"store":             "not available",
		"connection_status": "not connected",
		"bill_count":        0,
	}

	if h.store != nil {
		count, err := h.store.Count(c.Request.Context())
		if err != nil {
			response["store"] = "error: " + err.Error()
		} else {
			response["store"] = "connected"
			response["connection_status"] = "connected"
			response["bill_count"] = count
		}
	}

	c.JSON(http.StatusOK, response)
}

// ExtractTag extracts pricing details from an uploaded image or an
// image URL. Provide either a multipart "file" or a form "url".
func (h *Handler) ExtractTag(c *gin.Context) {
	if h.extraction == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Extraction service not configured",
		})
		return
	}

	imageURL := c.PostForm("url")
	fileHeader, fileErr := c.FormFile("file")

	if fileErr != nil && imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrNoImageProvided.Error(),
		})
		return
	}

	var (
		result *domain.ExtractionResult
		err    error
	)

	if fileErr == nil {
		if fileHeader.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "image file too large",
			})
			return
		}

		var content []byte
		content, err = readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "failed to read uploaded file",
			})
			return
		}

		result, err = h.extraction.ExtractFromFile(c.Request.Context(), fileHeader.Filename, content)
	} else {
		result, err = h.extraction.ExtractFromURL(c.Request.Context(), imageURL)
	}

	if err != nil {
		status := extractionErrorStatus(err)
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBill persists a billing record
func (h *Handler) CreateBill(c *gin.Context) {
	if h.billing == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Billing service not configured",
		})
		return
	}

	var bill domain.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid bill payload: " + err.Error(),
		})
		return
	}

	id, err := h.billing.CreateBill(c.Request.Context(), &bill)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBill) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     id,
		"status": "created",
	})
}

// ListBills returns the most recent bills
func (h *Handler) ListBills(c *gin.Context) {
	if h.billing == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Billing service not configured",
		})
		return
	}

	bills, err := h.billing.ListBills(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if bills == nil {
		bills = []domain.Bill{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": bills,
	})
}

// extractionErrorStatus maps extraction failures to HTTP status codes:
// missing input and unreadable images are client errors, provider
// failures are a bad gateway.
func extractionErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoImageProvided):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOCRUnreadable):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOCRServiceFailure):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// readUpload reads the full contents of a multipart upload
func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, maxUploadBytes))
}

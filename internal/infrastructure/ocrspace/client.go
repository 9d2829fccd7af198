package ocrspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/taglens/backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxRetries = 3

// Client handles communication with the OCR.space parse API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	engine      int
	language    string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OCR.space API client
func NewClient(apiKey, baseURL string, engine int, language string, timeout time.Duration) *Client {
	// OCR.space free tier allows 500 requests per day with short bursts
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		engine:      engine,
		language:    language,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ParseImage sends uploaded image bytes to OCR.space and returns the
// parsed text joined across all detected regions
func (c *Client) ParseImage(ctx context.Context, filename string, content []byte) (string, error) {
	if filename == "" {
		filename = "image.jpg"
	}

	build := func() (io.Reader, string, error) {
		payload := new(bytes.Buffer)
		writer := multipart.NewWriter(payload)

		if err := c.writeCommonFields(writer); err != nil {
			return nil, "", err
		}

		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
			return nil, "", err
		}
		if err := writer.Close(); err != nil {
			return nil, "", err
		}

		return payload, writer.FormDataContentType(), nil
	}

	return c.parseWithRetry(ctx, build)
}

// ParseImageURL asks OCR.space to fetch and parse an image by URL
func (c *Client) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	build := func() (io.Reader, string, error) {
		payload := new(bytes.Buffer)
		writer := multipart.NewWriter(payload)

		if err := c.writeCommonFields(writer); err != nil {
			return nil, "", err
		}
		if err := writer.WriteField("url", imageURL); err != nil {
			return nil, "", err
		}
		if err := writer.Close(); err != nil {
			return nil, "", err
		}

		return payload, writer.FormDataContentType(), nil
	}

	return c.parseWithRetry(ctx, build)
}

// writeCommonFields writes the request fields shared by file and URL parses
func (c *Client) writeCommonFields(writer *multipart.Writer) error {
	fields := map[string]string{
		"language":          c.language,
		"OCREngine":         strconv.Itoa(c.engine),
		"isOverlayRequired": "false",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	return nil
}

// parseWithRetry executes the OCR request, retrying transient failures
// with backoff. The request body is rebuilt per attempt because the
// multipart payload is consumed on send.
func (c *Client) parseWithRetry(ctx context.Context, build func() (io.Reader, string, error)) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		body, contentType, err := build()
		if err != nil {
			return "", fmt.Errorf("failed to build request: %w", err)
		}

		text, retryable, err := c.doParse(ctx, body, contentType)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", err
		}

		if c.debug {
			log.Printf("[OCR] Request error (attempt %d): %v", attempt, err)
		}
		lastErr = err

		select {
		case <-time.After(exponentialBackoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if c.debug {
		log.Printf("[OCR] All retries failed: %v", lastErr)
	}
	return "", lastErr
}

// doParse executes one OCR request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doParse(ctx context.Context, body io.Reader, contentType string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse/image", body)
	if err != nil {
		return "", false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "TagLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", domain.ErrOCRServiceFailure, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", domain.ErrOCRServiceFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[OCR] API error - Status: %d, Body: %s", resp.StatusCode, truncate(string(respBody), 120))
		}
		err := fmt.Errorf("%w: status %d: %s", domain.ErrOCRServiceFailure, resp.StatusCode, truncate(string(respBody), 120))
		return "", resp.StatusCode >= http.StatusInternalServerError, err
	}

	var ocrResp domain.OCRSpaceResponse
	if err := json.Unmarshal(respBody, &ocrResp); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}

	text, err := ExtractText(&ocrResp)
	if err != nil {
		return "", false, err
	}

	if c.debug {
		log.Printf("[OCR] Parsed %d regions, %d chars of text", len(ocrResp.ParsedResults), len(text))
	}
	return text, false, nil
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250*(1<<uint(attempt-1))) * time.Millisecond
}

// truncate shortens s to at most n bytes for log/error messages
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

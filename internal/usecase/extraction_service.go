package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/taglens/backend/internal/domain"
)

// ExtractionServiceConfig holds configuration for the extraction service
type ExtractionServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ExtractionService runs the OCR + parse pipeline for price-tag images
type ExtractionService struct {
	cache     domain.CacheRepository
	ocrClient domain.OCRClient
	parser    *TagParser
	cacheTTL  time.Duration
}

// NewExtractionService creates a new extraction service with dependencies
func NewExtractionService(
	cache domain.CacheRepository,
	ocrClient domain.OCRClient,
	config ExtractionServiceConfig,
) *ExtractionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ExtractionService{
		cache:     cache,
		ocrClient: ocrClient,
		parser:    NewTagParser(config.EnableDebugLogging),
		cacheTTL:  cacheTTL,
	}
}

// ExtractFromFile runs OCR over uploaded image bytes and parses the
// result. Uploads have no stable identity, so they bypass the cache.
func (s *ExtractionService) ExtractFromFile(ctx context.Context, filename string, content []byte) (*domain.ExtractionResult, error) {
	text, err := s.ocrClient.ParseImage(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	result := s.parser.Parse(text)
	return &result, nil
}

// ExtractFromURL extracts pricing details for an image URL.
// Flow: check cache -> OCR -> parse -> cache -> return
func (s *ExtractionService) ExtractFromURL(ctx context.Context, imageURL string) (*domain.ExtractionResult, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, domain.ErrNoImageProvided
	}

	cacheKey := s.generateCacheKey(imageURL)

	cached, err := s.getFromCache(ctx, cacheKey)
	if err == nil && cached != nil {
		return cached, nil
	}

	text, err := s.ocrClient.ParseImageURL(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	result := s.parser.Parse(text)

	if err := s.setInCache(ctx, cacheKey, &result); err != nil {
		// A cache failure only costs a repeat OCR call next time
		log.Printf("[EXTRACT] Failed to cache result for %s: %v", imageURL, err)
	}

	return &result, nil
}

// generateCacheKey creates a cache key for an image URL.
// Format: "extract:{trimmed_url}" (URLs stay case-sensitive)
func (s *ExtractionService) generateCacheKey(imageURL string) string {
	return fmt.Sprintf("extract:%s", strings.TrimSpace(imageURL))
}

// getFromCache retrieves a cached extraction result
func (s *ExtractionService) getFromCache(ctx context.Context, key string) (*domain.ExtractionResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	result, ok := value.(*domain.ExtractionResult)
	if !ok {
		// Cached values round-trip through JSON and come back as maps
		if dataMap, ok := value.(map[string]interface{}); ok {
			return mapToExtractionResult(dataMap), nil
		}
		return nil, domain.ErrCacheMiss
	}

	return result, nil
}

// setInCache stores an extraction result in cache
func (s *ExtractionService) setInCache(ctx context.Context, key string, result *domain.ExtractionResult) error {
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}

// mapToExtractionResult converts a map (from JSON cache) to an
// ExtractionResult. Absent fields decode as JSON null and stay nil.
func mapToExtractionResult(data map[string]interface{}) *domain.ExtractionResult {
	result := &domain.ExtractionResult{}

	if v, ok := data["raw_text"].(string); ok {
		result.RawText = v
	}
	if v, ok := data["name"].(string); ok {
		result.Name = &v
	}
	if v, ok := data["mrp"].(float64); ok {
		result.MRP = &v
	}
	if v, ok := data["sell_price"].(float64); ok {
		result.SellPrice = &v
	}

	return result
}

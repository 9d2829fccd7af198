package ocrspace

import (
	"fmt"
	"strings"

	"github.com/taglens/backend/internal/domain"
)

// ExtractText joins the parsed text from every detected region, in
// order, separated by line breaks. An errored or empty response maps
// to ErrOCRUnreadable.
func ExtractText(resp *domain.OCRSpaceResponse) (string, error) {
	if resp.IsErroredOnProcessing || len(resp.ParsedResults) == 0 {
		if msg := errorMessage(resp.ErrorMessage); msg != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrOCRUnreadable, msg)
		}
		return "", domain.ErrOCRUnreadable
	}

	texts := make([]string, 0, len(resp.ParsedResults))
	for _, result := range resp.ParsedResults {
		texts = append(texts, result.ParsedText)
	}
	return strings.Join(texts, "\n"), nil
}

// errorMessage flattens the provider's ErrorMessage field, which the
// API returns as either a string or a list of strings
func errorMessage(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

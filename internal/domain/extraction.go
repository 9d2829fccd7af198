package domain

// ExtractionResult holds the pricing details recovered from OCR text.
// Optional fields are pointers so an unresolved value serializes as
// JSON null rather than a zero sentinel.
type ExtractionResult struct {
	RawText   string   `json:"raw_text"`
	Name      *string  `json:"name"`
	MRP       *float64 `json:"mrp"`
	SellPrice *float64 `json:"sell_price"`
}

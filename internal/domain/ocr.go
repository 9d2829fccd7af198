package domain

// OCRSpaceResponse is the response envelope returned by the OCR.space
// parse endpoint (https://ocr.space/OCRAPI).
type OCRSpaceResponse struct {
	ParsedResults         []OCRParsedResult `json:"ParsedResults"`
	OCRExitCode           interface{}       `json:"OCRExitCode"`
	IsErroredOnProcessing bool              `json:"IsErroredOnProcessing"`
	ErrorMessage          interface{}       `json:"ErrorMessage"`
	ErrorDetails          interface{}       `json:"ErrorDetails"`
}

// OCRParsedResult is the text parsed from a single detected region.
type OCRParsedResult struct {
	ParsedText        string `json:"ParsedText"`
	FileParseExitCode int    `json:"FileParseExitCode"`
	ErrorMessage      string `json:"ErrorMessage,omitempty"`
}

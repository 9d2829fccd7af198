package domain

import "errors"

var (
	// ErrNoImageProvided is returned when an extraction request carries
	// neither an uploaded file nor an image URL
	ErrNoImageProvided = errors.New("provide an image file or a URL")

	// ErrOCRServiceFailure is returned when the OCR provider request fails
	ErrOCRServiceFailure = errors.New("OCR service request failed")

	// ErrOCRUnreadable is returned when the OCR provider could not read
	// any text from the image
	ErrOCRUnreadable = errors.New("unable to read text from image")

	// ErrInvalidBill is returned when a bill fails validation
	ErrInvalidBill = errors.New("invalid bill")

	// ErrBillNotFound is returned when a bill cannot be found in the store
	ErrBillNotFound = errors.New("bill not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

package render

// RenderError represents an error from the render package
type RenderError string

func (e RenderError) Error() string {
	return string(e)
}

const (
	// ErrInvalidInput is returned when the export input is missing
	ErrInvalidInput RenderError = "invalid input"

	// ErrInvalidSize is returned when the export dimensions are not positive
	ErrInvalidSize RenderError = "invalid export size"

	// ErrInvalidQuality is returned when the JPEG quality is outside 1..100
	ErrInvalidQuality RenderError = "invalid jpeg quality"
)

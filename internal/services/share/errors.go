package share

// ShareError represents an error from the share package
type ShareError string

func (e ShareError) Error() string {
	return string(e)
}

const (
	// ErrShareCanceled is returned by a Sharer when the player backs out
	ErrShareCanceled ShareError = "share canceled"

	// ErrInvalidInput is returned when a required input is missing
	ErrInvalidInput ShareError = "invalid input"

	// ErrEmptyImage is returned when there are no bytes to deliver
	ErrEmptyImage ShareError = "empty image"

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig ShareError = "config cannot be nil"

	// ErrNilExporter is returned when the export service is nil
	ErrNilExporter ShareError = "exporter cannot be nil"

	// ErrNilDownloader is returned when the downloader is nil
	ErrNilDownloader ShareError = "downloader cannot be nil"
)

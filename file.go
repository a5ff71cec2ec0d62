package cwsummary

import "context"

// File is a reference to a stored file, such as a PDF attached to a
// document block.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// FileService resolves file references to stored files.
type FileService interface {
	// FindFileByID retrieves a file by ID.
	// Returns ENOTFOUND if file does not exist.
	FindFileByID(ctx context.Context, id string) (*File, error)
}

// TextExtractor extracts the plain text content of a stored file.
type TextExtractor interface {
	// ExtractText returns the full text of the file at path.
	// Malformed files return an error.
	ExtractText(ctx context.Context, path string) (string, error)
}

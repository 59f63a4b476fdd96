package filestorage

import (
	"io"
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores an uploaded file under a subdirectory and returns its relative path
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// SaveReader stores the content of r under a subdirectory, keeping the extension of name
	SaveReader(name string, r io.Reader, subPath string) (string, error)

	// DeleteFile removes a stored file given the relative path returned on save
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a stored relative path
	GetFullPath(filePath string) string
}

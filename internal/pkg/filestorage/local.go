package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	now      func() time.Time
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// SaveFileWithPath saves an uploaded file to a specified subdirectory
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return ls.SaveReader(fileHeader.Filename, file, subPath)
}

// SaveReader copies r into a new file named <timestamp>-<uuid><ext> and returns its path
// relative to the storage root.
func (ls *LocalStorage) SaveReader(name string, r io.Reader, subPath string) (string, error) {
	subPath = filepath.Clean(strings.TrimLeft(subPath, "/"))
	if subPath == "." || strings.HasPrefix(subPath, "..") {
		subPath = ""
	}

	fullDirPath := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	// Generate a unique filename to prevent collisions
	uniqueFilename := ls.now().UTC().Format("20060102T150405") + "-" + uuid.New().String() + strings.ToLower(filepath.Ext(name))
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	logger.Info().Str("filename", name).Str("saved_as", relPath).Msg("File saved successfully")
	return relPath, nil
}

// DeleteFile removes a file from the storage filesystem.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFullPath returns the full filesystem path for a stored relative path, or "" when the
// path would leave the storage root.
func (ls *LocalStorage) GetFullPath(filePath string) string {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimLeft(filePath, "/")))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.Join(ls.basePath, clean)
}

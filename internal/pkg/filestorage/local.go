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
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/logger"
)

// LocalStorage stores uploaded documents on the local filesystem and serves
// them back through the router's static /uploads handler.
type LocalStorage struct {
	basePath string // root directory where files are written
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// storedFilename builds a collision-resistant name for an uploaded file:
// a millisecond timestamp prefix plus the sanitized original filename.
func storedFilename(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = uuid.New().String()
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), base)
}

// SaveFileWithPath saves a file to a specified subdirectory and returns its public URL.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	filename := storedFilename(fileHeader.Filename)
	dstPath := filepath.Join(fullDirPath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = strings.TrimRight(ls.baseURL, "/") + "/"
		if subPath != "" {
			accessiblePath += subPath + "/"
		}
		accessiblePath += filename
	} else {
		accessiblePath = filepath.Join("uploads", subPath, filename)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", filename).Msg("File saved")
	return accessiblePath, nil
}

// SaveFile saves an uploaded file using the default path
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// DeleteFile removes a file from storage. The argument may be a public URL or
// a relative path; only the final filename component is used. Deleting a
// missing file is treated as success so compensation is idempotent.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	filename := filepath.Base(fileURL)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	// The file may live in the base directory or one level down (subPath).
	candidates := []string{filepath.Join(ls.basePath, filename)}
	if parent := filepath.Base(filepath.Dir(fileURL)); parent != "" && parent != "." {
		candidates = append(candidates, filepath.Join(ls.basePath, parent, filename))
	}

	for _, physicalPath := range candidates {
		if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
			continue
		}
		if err := os.Remove(physicalPath); err != nil {
			logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
			return fmt.Errorf("failed to delete file: %w", err)
		}
		logger.Info().Str("path", physicalPath).Msg("File deleted")
		return nil
	}

	logger.Warn().Str("path", fileURL).Msg("File to delete does not exist")
	return nil
}

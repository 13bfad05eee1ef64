package usecase

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"
)

const maxUploadSize = 10 * 1024 * 1024

var (
	ErrFileTooLarge       = errors.New("file size must be less than 10MB")
	ErrFileTypeNotAllowed = errors.New("only PDF and image files are allowed")
	ErrEmptyFile          = errors.New("file is empty")
)

var allowedUploadTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/jpg":       {},
}

// FileUpload is an uploaded file before it is encoded for storage.
type FileUpload struct {
	FileName string
	FileType string
	Content  []byte
}

// ValidateFile enforces the upload limits: at most 10 MiB, PDF or image.
func ValidateFile(fileType string, size int64) error {
	if size > maxUploadSize {
		return ErrFileTooLarge
	}
	if _, ok := allowedUploadTypes[strings.ToLower(strings.TrimSpace(fileType))]; !ok {
		return ErrFileTypeNotAllowed
	}
	return nil
}

// EncodeDataURL stores file content inline, the way the store keeps uploads.
func EncodeDataURL(fileType string, content []byte) string {
	return "data:" + fileType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// FormatFileSize renders a byte count as "1.5 KB" style text.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizes)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return fmt.Sprintf("%s %s", trimFloat(v), sizes[i])
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

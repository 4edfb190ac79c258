package validation

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/username/autaxy/src/logger"
)

// reportMediaTypes are the media types an Apple report can arrive as: the
// monthly summary is CSV, the financial detail report is tab separated text.
var reportMediaTypes = map[string]bool{
	"text/plain":                true,
	"text/csv":                  true,
	"application/csv":           true,
	"text/tab-separated-values": true,
}

// sniffLength is how much of the content http.DetectContentType looks at.
const sniffLength = 512

func mediaType(contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}

// ValidateClientContentType rejects a declared Content-Type that is not a report media type.
func ValidateClientContentType(contentType string) error {
	if !reportMediaTypes[mediaType(contentType)] {
		logger.L.Warn("Rejected declared report content type", "contentType", contentType)
		return fmt.Errorf("%w: content type '%s' is not allowed for reports, expected text, CSV or TSV", ErrValidationFailed, contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes sniffs the start of file and requires it to
// look like text. The reader is rewound before returning; the detected media
// type is returned even on rejection.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", errors.New("file is nil")
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read report head: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind report: %w", err)
	}

	detected := mediaType(http.DetectContentType(head[:n]))
	if !reportMediaTypes[detected] {
		logger.L.Warn("Report content does not look like text", "detectedContentType", detected)
		return detected, fmt.Errorf("%w: content detected as '%s', expected a text report", ErrValidationFailed, detected)
	}
	return detected, nil
}

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/security/validation"
	"github.com/username/autaxy/src/utils"
)

const multipartOverhead = 1 << 20

// readReportText extracts the report text from a multipart "file" field or a
// raw text body. It writes the error response itself and returns false on failure.
func readReportText(w http.ResponseWriter, r *http.Request, maxBytes int64) (string, bool) {
	log := logger.FromContext(r.Context())
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var raw []byte
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			log.Warn("Failed to parse multipart form or request too large", "error", err, "limit", maxBytes)
			utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", maxBytes/(1024*1024)), http.StatusBadRequest)
			return "", false
		}

		file, fileHeader, err := r.FormFile("file")
		if err != nil {
			log.Warn("Failed to retrieve file from request", "error", err)
			utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
			return "", false
		}
		defer file.Close()

		if fileHeader.Size > maxBytes {
			log.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", maxBytes)
			utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", maxBytes/(1024*1024)), http.StatusRequestEntityTooLarge)
			return "", false
		}

		clientContentType := fileHeader.Header.Get("Content-Type")
		if err := validation.ValidateClientContentType(clientContentType); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return "", false
		}

		detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
		if err != nil {
			log.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return "", false
		}
		log.Debug("Report file accepted", "filename", fileHeader.Filename, "clientType", clientContentType, "detectedType", detectedContentType)

		raw, err = io.ReadAll(file)
		if err != nil {
			log.Error("Failed to read uploaded file", "error", err)
			utils.SendJSONError(w, "Failed to read uploaded file", http.StatusBadRequest)
			return "", false
		}
	} else {
		if err := validation.ValidateClientContentType(r.Header.Get("Content-Type")); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusUnsupportedMediaType)
			return "", false
		}

		var err error
		raw, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				utils.SendJSONError(w, fmt.Sprintf("Report too large, max %d MB", maxBytes/(1024*1024)), http.StatusRequestEntityTooLarge)
				return "", false
			}
			log.Warn("Failed to read request body", "error", err)
			utils.SendJSONError(w, "Failed to read request body", http.StatusBadRequest)
			return "", false
		}

		if _, err := validation.ValidateFileContentByMagicBytes(bytes.NewReader(raw)); err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return "", false
		}
	}

	return validation.StripUnprintable(string(raw)), true
}

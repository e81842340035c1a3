package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// HTTPHandler handles HTTP requests and responses
type HTTPHandler struct {
	fileService       FileService
	responseFormatter ResponseFormatter
}

// NewHTTPHandler creates a new HTTP handler with dependencies
func NewHTTPHandler(fileService FileService, responseFormatter ResponseFormatter) *HTTPHandler {
	return &HTTPHandler{
		fileService:       fileService,
		responseFormatter: responseFormatter,
	}
}

// RelayHandler is the single endpoint. It accepts POST application/json
// bodies carrying a list, download or upload command and relays them to the
// storage backend.
func (h *HTTPHandler) RelayHandler(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	// Last-resort conversion so no fault ever escapes the handler
	defer func() {
		if rec := recover(); rec != nil {
			message := "Unknown error"
			if err, ok := rec.(error); ok {
				message = err.Error()
			} else if s, ok := rec.(string); ok {
				message = s
			}
			log.Printf("[%s] recovered from panic: %v", reqID, rec)
			http.Error(w, "❌ Bad Request: "+message, http.StatusBadRequest)
		}
	}()

	if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
		log.Printf("[%s] rejected %s request with content type %q", reqID, r.Method, r.Header.Get("Content-Type"))
		http.Error(w, "❌ Expected POST with JSON", http.StatusBadRequest)
		return
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[%s] error reading body: %v", reqID, err)
		http.Error(w, "❌ Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var body map[string]any
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		log.Printf("[%s] error parsing JSON body: %v", reqID, err)
		http.Error(w, "❌ Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}

	switch cmd := resolveCommand(body); cmd.kind {
	case cmdList:
		h.handleList(w, reqID)
	case cmdDownload:
		h.handleDownload(w, reqID, cmd.downloadName)
	default:
		h.handleUpload(w, reqID, cmd)
	}
}

// handleList relays the list command
func (h *HTTPHandler) handleList(w http.ResponseWriter, reqID string) {
	objects, err := h.fileService.List()
	if err != nil {
		log.Printf("[%s] error listing files: %v", reqID, err)
		http.Error(w, "❌ Failed to list files: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("[%s] listed %d file(s)", reqID, len(objects))
	writeJSON(w, h.responseFormatter.FormatListResponse(objects))
}

// handleDownload relays the download command and streams the object back
func (h *HTTPHandler) handleDownload(w http.ResponseWriter, reqID string, name string) {
	data, contentType, err := h.fileService.Download(name)
	if errors.Is(err, ErrFileNotFound) {
		log.Printf("[%s] download %q: no data in bucket", reqID, name)
		http.Error(w, "❌ File not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[%s] error downloading %q: %v", reqID, name, err)
		http.Error(w, "❌ Failed to download file: "+err.Error(), http.StatusNotFound)
		return
	}

	log.Printf("[%s] downloaded %q (%d bytes)", reqID, name, len(data))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleUpload relays the upload command
func (h *HTTPHandler) handleUpload(w http.ResponseWriter, reqID string, cmd command) {
	if !cmd.inputIsString {
		log.Printf("[%s] upload rejected: input missing or not a string", reqID)
		http.Error(w, "❌ 'input' must be a string (base64 encoded)", http.StatusBadRequest)
		return
	}

	result, err := h.fileService.Upload(cmd.input, cmd.filename, cmd.hasFilename)
	if errors.Is(err, ErrInvalidBase64) {
		log.Printf("[%s] upload rejected: malformed base64", reqID)
		http.Error(w, "❌ Invalid base64 string", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[%s] error saving file: %v", reqID, err)
		http.Error(w, "❌ Failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("[%s] uploaded %q (%d bytes, %s)", reqID, result.Filename, result.Size, result.ContentType)
	writeJSON(w, h.responseFormatter.FormatUploadResponse(result))
}

// writeJSON writes a 200 response with a JSON body
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

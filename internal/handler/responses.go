package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpstreamErrorResponse reports a platform reply that could not be decoded.
// The raw body is echoed back to help diagnose platform outages.
type UpstreamErrorResponse struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	StatusCode   int    `json:"status_code"`
	ResponseText string `json:"response_text"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	// Encode before writing headers so a failure can still become a 500
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondRawJSON writes an already encoded JSON body
func respondRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response body", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondText sends a plain text response
func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, ContentTypeText)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		slog.Error("Failed to write response body", "error", err)
	}
}

// respondHTML sends an HTML body
func respondHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set(HeaderContentType, ContentTypeHTML)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response body", "error", err)
	}
}

// respondUpstreamDecodeError sends the diagnostic payload for an undecodable platform reply.
// Only the head of the body is echoed.
func respondUpstreamDecodeError(w http.ResponseWriter, status int, body []byte, err error) {
	if len(body) > maxResponseTextBytes {
		body = body[:maxResponseTextBytes]
	}
	respondJSON(w, http.StatusInternalServerError, UpstreamErrorResponse{
		Error:        ErrMsgUpstreamDecode,
		Message:      err.Error(),
		StatusCode:   status,
		ResponseText: string(body),
	})
}

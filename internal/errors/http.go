package errors

import (
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response body is read for the
// user-facing message.
const maxErrorBody = 4 << 10

// FromResponse builds a SyncError from a non-success response. The message
// is the response body text when present, else fallback.
func FromResponse(op, fallback string, resp *http.Response) *SyncError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = fallback
	}
	return &SyncError{Status: resp.StatusCode, Message: msg, Op: op}
}

// FromTransport builds a SyncError for a request that never produced a
// response.
func FromTransport(op, fallback string, err error) *SyncError {
	return &SyncError{Message: fallback, Op: op, Underlying: err}
}

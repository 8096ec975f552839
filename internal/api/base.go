// Package api holds one function per REST verb against the collection
// store. Functions translate non-success responses into *errors.SyncError,
// taking the message from the response body text when present. There are
// no retries and no locally imposed timeout; the caller's http.Client and
// context govern how long a request may run.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/familykitchen/recipeshelf/internal/errors"
)

// HTTPClient is the slice of *http.Client these functions need; tests
// inject failing round-trippers through it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// doJSON performs a request with an optional JSON body and returns the
// response, translating transport failures into SyncError.
func doJSON(ctx context.Context, hc HTTPClient, method, url string, payload any, op, fallback string) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(raw)
	}
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, errors.FromTransport(op, fallback, err)
	}
	return resp, nil
}

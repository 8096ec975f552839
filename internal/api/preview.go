package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/familykitchen/recipeshelf/internal/errors"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// FetchPreview asks the preview endpoint for link metadata. Non-success
// responses surface as SyncError here; the preview cache swallows them and
// resolves the lookup to nil, since previews are decorative.
func FetchPreview(ctx context.Context, hc HTTPClient, baseURL, target string) (*types.PreviewMetadata, error) {
	const op, fallback = "fetch preview", "미리보기를 불러오지 못했습니다"
	u := fmt.Sprintf("%s/api/preview?url=%s", baseURL, url.QueryEscape(target))
	resp, err := doJSON(ctx, hc, http.MethodGet, u, nil, op, fallback)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, errors.FromResponse(op, fallback, resp)
	}

	var meta types.PreviewMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

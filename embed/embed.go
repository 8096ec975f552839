// Package embed maps video-hosting URLs to playable embed references.
package embed

import (
	"net/url"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

// Ref is a playable-in-page reference to a recognized video.
type Ref struct {
	VideoID string
	URL     string
}

// Resolve parses rawURL and returns an embed reference, or nil when the
// URL is unparsable or not a recognized video shape. Three shapes are
// recognized: the shortened host (youtu.be/{id}), the canonical host with
// a v query parameter, and the canonical /shorts/{id} path. Anything else
// on a recognized host (a channel page, say) falls back to the generic
// link preview.
func Resolve(rawURL string) *Ref {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if !strings.Contains(host, "youtube.com") && !strings.Contains(host, "youtu.be") {
		return nil
	}
	if host == "youtu.be" {
		if id := strings.TrimPrefix(u.Path, "/"); id != "" {
			return refFor(id)
		}
		return nil
	}
	if id := u.Query().Get("v"); id != "" {
		return refFor(id)
	}
	if strings.HasPrefix(u.Path, "/shorts/") {
		if parts := strings.Split(u.Path, "/"); len(parts) > 2 && parts[2] != "" {
			return refFor(parts[2])
		}
	}
	return nil
}

func refFor(id string) *Ref {
	return &Ref{VideoID: id, URL: embedBase + id}
}

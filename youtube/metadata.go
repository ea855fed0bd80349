package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidURL is returned when a video id cannot be parsed from the input.
var ErrInvalidURL = errors.New("invalid video url")

// Video holds the metadata surfaced alongside a transcript.
type Video struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Length      int      `json:"length"`
	Views       int      `json:"views"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type MetadataClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMetadataClient(baseURL string) *MetadataClient {
	return &MetadataClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch resolves a watch URL to its video id and retrieves the metadata.
func (c *MetadataClient) Fetch(ctx context.Context, watchURL string) (*Video, error) {
	videoID, err := ParseVideoID(watchURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/videos/%s", c.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var video Video
	if err := json.Unmarshal(body, &video); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	video.ID = videoID
	return &video, nil
}

// ParseVideoID extracts the 11-character video id from the common watch URL
// forms: watch?v=, youtu.be/, shorts/, embed/. A bare id is accepted as-is.
func ParseVideoID(watchURL string) (string, error) {
	raw := strings.TrimSpace(watchURL)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}

	// Bare video id
	if !strings.ContainsAny(raw, "/?&.") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		if id == "" {
			return "", fmt.Errorf("%w: %s", ErrInvalidURL, watchURL)
		}
		return id, nil
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := strings.Trim(strings.TrimPrefix(u.Path, prefix), "/")
				if id != "" {
					return id, nil
				}
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidURL, watchURL)
}

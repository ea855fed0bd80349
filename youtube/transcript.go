// Package youtube provides clients for the hosted transcript and video
// metadata services, plus SRT serialization of caption tracks.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// ErrNoTranscript is returned when a video has no caption track in any of
// the preferred languages. The caller must not proceed to prompt assembly.
var ErrNoTranscript = errors.New("no transcript available")

// ErrUnavailable wraps transcript service transport failures.
var ErrUnavailable = errors.New("transcript service unavailable")

// Caption is a single timed caption line. Start and Duration are seconds.
type Caption struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// CaptionTrack is a full caption track in one language.
type CaptionTrack struct {
	Language string    `json:"language"`
	Captions []Caption `json:"captions"`
}

type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTranscriptClient(baseURL string) *TranscriptClient {
	return &TranscriptClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the caption tracks for a video and returns the first track
// whose language appears in the preferred list, walking the list in order.
// Ordering and timing of the captions are preserved as served.
func (c *TranscriptClient) Fetch(ctx context.Context, videoID string, languages []string) ([]Caption, error) {
	url := fmt.Sprintf("%s/transcripts/%s", c.baseURL, videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: video %s", ErrNoTranscript, videoID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var response transcriptResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	for _, lang := range languages {
		for _, track := range response.Tracks {
			if track.Language == lang {
				logger.Info("Selected caption track",
					zap.String("videoId", videoID),
					zap.String("language", lang),
					zap.Int("captions", len(track.Captions)))
				return track.Captions, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: no track in languages %v", ErrNoTranscript, languages)
}

type transcriptResponse struct {
	VideoID string         `json:"video_id"`
	Tracks  []CaptionTrack `json:"tracks"`
}

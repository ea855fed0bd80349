package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ExtractorClient implements PageExtractor against the PDF extraction
// sidecar service.
type ExtractorClient struct {
	serviceURL string
	client     *http.Client
}

func NewExtractorClient(serviceURL string) *ExtractorClient {
	if serviceURL == "" {
		serviceURL = "http://localhost:8081"
	}
	return &ExtractorClient{
		serviceURL: serviceURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// extractResponse is the extraction service response format.
type extractResponse struct {
	Pages []string `json:"pages"`
	Error string   `json:"error,omitempty"`
}

// ExtractPages posts PDF bytes to the extraction service and returns the
// per-page text in document order.
func (c *ExtractorClient) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.serviceURL+"/extract", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling PDF extractor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PDF extractor returned status %d", resp.StatusCode)
	}

	var result extractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, result.Error)
	}

	return result.Pages, nil
}

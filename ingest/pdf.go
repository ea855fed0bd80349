package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// ErrSourceUnreadable is returned for corrupt or unparseable documents.
// The attempt is terminal; session grounding stays untouched.
var ErrSourceUnreadable = errors.New("source unreadable")

// PageExtractor extracts text from binary document formats page by page.
type PageExtractor interface {
	ExtractPages(ctx context.Context, data []byte) ([]string, error)
}

// PDFIngestor produces a bounded grounding text from PDF bytes:
// page extraction, separator-aware chunking, then accumulation of whole
// chunks up to the character limit.
type PDFIngestor struct {
	extractor PageExtractor
	splitter  Splitter
	charLimit int
}

func NewPDFIngestor(extractor PageExtractor, splitter Splitter, charLimit int) *PDFIngestor {
	if charLimit <= 0 {
		charLimit = DefaultCharLimit
	}
	return &PDFIngestor{
		extractor: extractor,
		splitter:  splitter,
		charLimit: charLimit,
	}
}

// Ingest returns the bounded text and whether truncation occurred.
// Truncation happens only at chunk boundaries: a chunk that would push the
// total past the limit is dropped along with everything after it.
func (ing *PDFIngestor) Ingest(ctx context.Context, data []byte) (string, bool, error) {
	pages, err := ing.extractor.ExtractPages(ctx, data)
	if err != nil {
		return "", false, fmt.Errorf("extracting pages: %w", err)
	}

	text := strings.Join(pages, "")
	chunks := ing.splitter.Split(text)

	var sb strings.Builder
	truncated := false
	for _, chunk := range chunks {
		if sb.Len()+len(chunk) > ing.charLimit {
			truncated = true
			logger.Info("Document exceeds character limit, truncating at chunk boundary",
				zap.Int("limit", ing.charLimit),
				zap.Int("kept", sb.Len()))
			break
		}
		sb.WriteString(chunk)
	}

	return sb.String(), truncated, nil
}

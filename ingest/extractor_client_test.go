package ingest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractorClientExtractPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/extract", r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7", string(body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extractResponse{
			Pages: []string{"first page text", "second page text"},
		})
	}))
	defer server.Close()

	client := NewExtractorClient(server.URL)
	pages, err := client.ExtractPages(context.Background(), []byte("%PDF-1.7"))

	require.NoError(t, err)
	assert.Equal(t, []string{"first page text", "second page text"}, pages)
}

func TestExtractorClientExtractPagesUnreadable(t *testing.T) {
	t.Run("service reports parse error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(extractResponse{Error: "corrupt xref table"})
		}))
		defer server.Close()

		client := NewExtractorClient(server.URL)
		_, err := client.ExtractPages(context.Background(), []byte("garbage"))

		assert.ErrorIs(t, err, ErrSourceUnreadable)
	})

	t.Run("service rejects input", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not a pdf", http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client := NewExtractorClient(server.URL)
		_, err := client.ExtractPages(context.Background(), []byte("garbage"))

		assert.ErrorIs(t, err, ErrSourceUnreadable)
	})
}

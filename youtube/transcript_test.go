package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscriptServer(t *testing.T, tracks []CaptionTrack) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transcriptResponse{
			VideoID: "abc123",
			Tracks:  tracks,
		})
	}))
}

func TestTranscriptClientFetch(t *testing.T) {
	esTrack := CaptionTrack{
		Language: "es",
		Captions: []Caption{
			{Start: 0, Duration: 2.5, Text: "Hola"},
			{Start: 2.5, Duration: 3, Text: "Bienvenidos"},
		},
	}

	t.Run("preferred language present", func(t *testing.T) {
		server := newTranscriptServer(t, []CaptionTrack{
			esTrack,
			{Language: "en", Captions: []Caption{{Start: 0, Duration: 2, Text: "Hello"}}},
		})
		defer server.Close()

		client := NewTranscriptClient(server.URL)
		captions, err := client.Fetch(context.Background(), "abc123", []string{"en", "ru", "es"})

		require.NoError(t, err)
		require.Len(t, captions, 1)
		assert.Equal(t, "Hello", captions[0].Text)
	})

	t.Run("falls back along preference order", func(t *testing.T) {
		server := newTranscriptServer(t, []CaptionTrack{esTrack})
		defer server.Close()

		client := NewTranscriptClient(server.URL)
		captions, err := client.Fetch(context.Background(), "abc123", []string{"en", "ru", "es"})

		require.NoError(t, err)
		require.Len(t, captions, 2)
		assert.Equal(t, "Hola", captions[0].Text)
		assert.Equal(t, 2.5, captions[1].Start)
	})

	t.Run("no preferred language track", func(t *testing.T) {
		server := newTranscriptServer(t, []CaptionTrack{{Language: "de"}})
		defer server.Close()

		client := NewTranscriptClient(server.URL)
		_, err := client.Fetch(context.Background(), "abc123", []string{"en", "ru", "es"})

		assert.ErrorIs(t, err, ErrNoTranscript)
	})

	t.Run("video without transcript", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewTranscriptClient(server.URL)
		_, err := client.Fetch(context.Background(), "missing", []string{"en"})

		assert.ErrorIs(t, err, ErrNoTranscript)
	})

	t.Run("service error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewTranscriptClient(server.URL)
		_, err := client.Fetch(context.Background(), "abc123", []string{"en"})

		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestFormatSRT(t *testing.T) {
	captions := []Caption{
		{Start: 0, Duration: 2.5, Text: "Hello"},
		{Start: 2.5, Duration: 3, Text: "Welcome back"},
		{Start: 3605.25, Duration: 1.5, Text: "Bye"},
	}

	srt := FormatSRT(captions)

	expected := "1\n" +
		"00:00:00,000 --> 00:00:02,500\n" +
		"Hello\n" +
		"\n" +
		"2\n" +
		"00:00:02,500 --> 00:00:05,500\n" +
		"Welcome back\n" +
		"\n" +
		"3\n" +
		"01:00:05,250 --> 01:00:06,750\n" +
		"Bye\n"

	assert.Equal(t, expected, srt)
}

func TestFormatSRTEmpty(t *testing.T) {
	assert.Equal(t, "", FormatSRT(nil))
}

package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitterSplit(t *testing.T) {
	t.Run("merges segments up to chunk size", func(t *testing.T) {
		s := NewSplitter("\n", 10, 0)
		chunks := s.Split("aaaa\nbbbb\ncccc")

		assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks)
	})

	t.Run("overlap carries trailing segments", func(t *testing.T) {
		s := NewSplitter("\n", 10, 5)
		chunks := s.Split("aaaa\nbbbb\ncccc")

		assert.Equal(t, []string{"aaaa\nbbbb", "bbbb\ncccc"}, chunks)
	})

	t.Run("oversized segment kept whole", func(t *testing.T) {
		s := NewSplitter("\n", 10, 0)
		long := strings.Repeat("x", 25)
		chunks := s.Split("aa\n" + long + "\nbb")

		require.Len(t, chunks, 3)
		assert.Equal(t, "aa", chunks[0])
		assert.Equal(t, long, chunks[1])
		assert.Equal(t, "bb", chunks[2])
	})

	t.Run("empty and blank input", func(t *testing.T) {
		s := NewSplitter("\n", 10, 0)
		assert.Nil(t, s.Split(""))
		assert.Nil(t, s.Split("  \n "))
	})

	t.Run("defaults applied", func(t *testing.T) {
		s := NewSplitter("", 0, -1)
		assert.Equal(t, "\n", s.Separator)
		assert.Equal(t, DefaultChunkSize, s.ChunkSize)
		assert.Equal(t, 0, s.ChunkOverlap)
	})

	t.Run("carry plus incoming segment stays within chunk size", func(t *testing.T) {
		s := NewSplitter("\n", 10, 4)
		chunks := s.Split("aaaa\nbbb\nxxxxxxxxxx")

		assert.Equal(t, []string{"aaaa\nbbb", "xxxxxxxxxx"}, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 10)
		}
	})

	t.Run("no chunk exceeds size for separator-dense text", func(t *testing.T) {
		s := NewSplitter("\n", 50, 10)
		var lines []string
		for i := 0; i < 40; i++ {
			lines = append(lines, strings.Repeat("w", 7))
		}
		chunks := s.Split(strings.Join(lines, "\n"))

		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 50)
		}
	})
}

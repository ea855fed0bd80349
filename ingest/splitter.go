// Package ingest turns raw document sources into bounded plain text ready
// for prompt assembly.
package ingest

import "strings"

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultCharLimit    = 90000
)

// Splitter is a separator-aware character splitter. Text is cut at separator
// boundaries and merged into chunks of at most ChunkSize characters, with up
// to ChunkOverlap trailing characters repeated at the start of the next
// chunk. A single segment longer than ChunkSize is kept whole.
type Splitter struct {
	Separator    string
	ChunkSize    int
	ChunkOverlap int
}

func NewSplitter(separator string, chunkSize, chunkOverlap int) Splitter {
	if separator == "" {
		separator = "\n"
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return Splitter{
		Separator:    separator,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	}
}

// Split cuts text into chunks. The separator is preserved between segments
// merged into the same chunk and dropped at chunk boundaries.
func (s Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	segments := strings.Split(text, s.Separator)

	var chunks []string
	var current []string
	currentLen := 0
	freshTail := false // tail holds segments not yet emitted in a chunk

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, s.Separator))

		// Carry trailing segments into the next chunk as overlap.
		var carry []string
		carryLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			segLen := len(current[i])
			if carryLen+segLen+len(carry)*len(s.Separator) > s.ChunkOverlap {
				break
			}
			carry = append([]string{current[i]}, carry...)
			carryLen += segLen
		}
		current = carry
		currentLen = carryLen
		if len(carry) > 1 {
			currentLen += (len(carry) - 1) * len(s.Separator)
		}
		freshTail = false
	}

	for _, segment := range segments {
		segLen := len(segment)
		joinLen := 0
		if len(current) > 0 {
			joinLen = len(s.Separator)
		}

		if currentLen+joinLen+segLen > s.ChunkSize && len(current) > 0 {
			flush()
			// The carry counts against the budget too: drop leading carry
			// segments until the incoming segment fits.
			for len(current) > 0 && currentLen+len(s.Separator)+segLen > s.ChunkSize {
				currentLen -= len(current[0])
				current = current[1:]
				if len(current) > 0 {
					currentLen -= len(s.Separator)
				}
			}
			if len(current) > 0 {
				joinLen = len(s.Separator)
			} else {
				joinLen = 0
			}
		}

		current = append(current, segment)
		currentLen += joinLen + segLen
		freshTail = true
	}

	if len(current) > 0 && freshTail {
		chunks = append(chunks, strings.Join(current, s.Separator))
	}

	return chunks
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short resume paragraph.", 1000, 150)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short resume paragraph.", chunks[0])
}

func TestChunkText_EmptyText(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 150))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 150))
}

func TestChunkText_SplitsLongText(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, strings.Repeat("experience with distributed systems ", 10))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.ChunkText(text, 1000, 150)
	assert.Greater(t, len(chunks), 1)
}

func TestChunkText_OverlapCarriesTail(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("alpha ", 100) + "\n\n" + strings.Repeat("beta ", 100) + "\n\n" + strings.Repeat("gamma ", 100)

	chunks := chunker.ChunkText(text, 400, 100)
	require.Greater(t, len(chunks), 1)

	// Each chunk after the first starts with the tail of its predecessor.
	tail := lastNRunes(chunks[0], 100)
	assert.True(t, strings.HasPrefix(chunks[1], tail))
}

func TestChunkText_DefaultsForBadParams(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("some text", 0, -5)
	require.Len(t, chunks, 1)
}

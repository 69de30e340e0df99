package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "w%d ", i)
	}
	return b.String()
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Nil(t, ChunkText("", 500, 50))
	assert.Nil(t, ChunkText("   \n\t ", 500, 50))
}

func TestChunkTextSingleWindow(t *testing.T) {
	chunks := ChunkText(words(120), 500, 50)
	require.Len(t, chunks, 1)
	assert.Len(t, strings.Fields(chunks[0]), 120)
}

func TestChunkTextOverlap(t *testing.T) {
	chunks := ChunkText(words(25), 10, 2)
	// step of 8: windows at 0, 8, and 16 (which reaches the end)
	require.Len(t, chunks, 3)

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	assert.Len(t, first, 10)
	// last two words of one window open the next
	assert.Equal(t, first[8:], second[:2])

	last := strings.Fields(chunks[2])
	assert.Len(t, last, 9)
	assert.Equal(t, "w24", last[len(last)-1])
}

func TestChunkTextBadOverlapIgnored(t *testing.T) {
	// overlap >= size would loop forever; it must be dropped
	chunks := ChunkText(words(20), 10, 10)
	require.Len(t, chunks, 2)
}

package stream

import (
	"fmt"
	"testing"
)

func TestChunkDigests(t *testing.T) {
	digests := make([]string, 60)
	for i := range digests {
		digests[i] = fmt.Sprintf("digest-%02d", i)
	}

	chunks, err := ChunkDigests(digests, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("chunk count: got %d, want 3", len(chunks))
	}
	for i, want := range []int{25, 25, 10} {
		if len(chunks[i]) != want {
			t.Fatalf("chunk %d size: got %d, want %d", i, len(chunks[i]), want)
		}
	}
	if chunks[0][0] != "digest-00" || chunks[2][9] != "digest-59" {
		t.Fatalf("chunk order broken: %q, %q", chunks[0][0], chunks[2][9])
	}
}

func TestChunkDigestsEmpty(t *testing.T) {
	chunks, err := ChunkDigests(nil, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}

func TestChunkDigestsInvalidSize(t *testing.T) {
	if _, err := ChunkDigests([]string{"a"}, 0); err == nil {
		t.Fatal("expected error for zero chunk size")
	}
}

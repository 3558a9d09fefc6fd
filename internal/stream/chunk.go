package stream

import "fmt"

// ChunkDigests splits an ordered digest list into consecutive chunks
// of at most size entries, preserving order.
func ChunkDigests(digests []string, size int) ([][]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be greater than zero")
	}

	chunks := make([][]string, 0, (len(digests)+size-1)/size)
	for start := 0; start < len(digests); start += size {
		end := start + size
		if end > len(digests) {
			end = len(digests)
		}
		chunks = append(chunks, digests[start:end])
	}
	return chunks, nil
}

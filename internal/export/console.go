package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"suistream/internal/model"
)

// Console writes records as JSON lines to a writer, stdout by default.
type Console struct {
	w  io.Writer
	mu sync.Mutex
}

func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

func (c *Console) Open() error { return nil }

func (c *Console) ExportItems(items []model.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writer := bufio.NewWriter(c.w)
	for _, item := range items {
		line, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}
	return writer.Flush()
}

func (c *Console) Close() error { return nil }

package export

import (
	"context"
	"fmt"
	"strings"

	"suistream/internal/export/postgres"
)

// CreateSink builds the sink for a list of output targets and fans out
// across them when more than one is given. Supported targets:
//
//	console                 JSON lines on stdout
//	postgres://... (or postgresql://)  Postgres via pgx
//	bundle://<dir>          per-checkpoint bundle files
//	<path>.jsonl            append-only JSONL file
func CreateSink(ctx context.Context, outputs []string) (Sink, error) {
	if len(outputs) == 0 {
		return NewConsole(nil), nil
	}

	sinks := make([]Sink, 0, len(outputs))
	for _, output := range outputs {
		sink, err := createSink(ctx, strings.TrimSpace(output))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return NewMulti(sinks...), nil
}

func createSink(ctx context.Context, output string) (Sink, error) {
	switch {
	case output == "" || output == "console":
		return NewConsole(nil), nil
	case strings.HasPrefix(output, "postgres://") || strings.HasPrefix(output, "postgresql://"):
		return postgres.NewStore(ctx, output)
	case strings.HasPrefix(output, "bundle://"):
		return NewBundle(strings.TrimPrefix(output, "bundle://")), nil
	case strings.HasSuffix(output, ".jsonl"):
		return NewJsonl(output), nil
	default:
		return nil, fmt.Errorf("unable to determine sink type for output %q", output)
	}
}

package metrics

import (
	"context"
	"encoding/json"

	"suistream/internal/rpc"
)

// InstrumentCaller wraps a caller so every JSON-RPC request is counted
// by method and outcome.
func InstrumentCaller(caller rpc.Caller) rpc.Caller {
	return instrumentedCaller{caller: caller}
}

type instrumentedCaller struct {
	caller rpc.Caller
}

func (c instrumentedCaller) Do(ctx context.Context, req rpc.Request) (json.RawMessage, error) {
	result, err := c.caller.Do(ctx, req)
	status := "ok"
	if err != nil {
		status = "error"
	}
	RPCRequestsTotal.WithLabelValues(req.Method, status).Inc()
	return result, err
}

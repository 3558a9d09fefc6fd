package stream

import (
	"strconv"
	"strings"

	"suistream/internal/model"
)

const idSeparator = "_"

// ItemID derives the stable composite identity of a record:
//
//	checkpoint  -> checkpoint_<digest>
//	transaction -> transaction_<digest>
//	object      -> object_<object_id>_<version>
//	event       -> event_<transaction_digest>_<event_seq>
//
// It is a pure function; when required key fields are missing it
// reports false and the caller decides whether to log. The identity is
// stable across re-fetches of the same chain state.
func ItemID(record model.Record) (string, bool) {
	switch r := record.(type) {
	case *model.Checkpoint:
		if r.Digest == "" {
			return "", false
		}
		return concat(model.TypeCheckpoint, r.Digest), true
	case *model.Transaction:
		if r.Digest == "" {
			return "", false
		}
		return concat(model.TypeTransaction, r.Digest), true
	case *model.Object:
		if r.ObjectID == "" || r.Version == nil {
			return "", false
		}
		return concat(model.TypeObject, r.ObjectID, strconv.FormatInt(*r.Version, 10)), true
	case *model.Event:
		if r.TransactionDigest == "" || r.EventSeq == nil {
			return "", false
		}
		return concat(model.TypeEvent, r.TransactionDigest, strconv.FormatInt(*r.EventSeq, 10)), true
	default:
		return "", false
	}
}

func concat(parts ...string) string {
	return strings.Join(parts, idSeparator)
}

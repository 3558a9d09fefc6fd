package stream

import "errors"

// ErrIntegrity marks a violated structural invariant, such as zero or
// multiple checkpoint records for one sequence number. It is fatal for
// the round.
var ErrIntegrity = errors.New("integrity violation")

package stream

import (
	"fmt"
	"strings"

	"suistream/internal/model"
)

// EntitySet selects which record types a round exports. Checkpoints
// are always exported; the transaction fetch runs when any of
// transaction, object, or event is selected.
type EntitySet map[string]struct{}

var allEntities = []string{
	model.TypeCheckpoint,
	model.TypeTransaction,
	model.TypeObject,
	model.TypeEvent,
}

// AllEntities selects every record type.
func AllEntities() EntitySet {
	return ParseEntitiesUnchecked(allEntities)
}

// ParseEntities validates a comma-separable list of entity type names.
func ParseEntities(names []string) (EntitySet, error) {
	set := make(EntitySet, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !isKnownEntity(name) {
			return nil, fmt.Errorf("unknown entity type %q, expected one of %s", name, strings.Join(allEntities, ", "))
		}
		set[name] = struct{}{}
	}
	if len(set) == 0 {
		return AllEntities(), nil
	}
	return set, nil
}

// ParseEntitiesUnchecked builds a set from already-validated names.
func ParseEntitiesUnchecked(names []string) EntitySet {
	set := make(EntitySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func isKnownEntity(name string) bool {
	for _, known := range allEntities {
		if name == known {
			return true
		}
	}
	return false
}

// WantsTransactions reports whether the transaction fetch job must run.
func (s EntitySet) WantsTransactions() bool {
	for _, name := range []string{model.TypeTransaction, model.TypeObject, model.TypeEvent} {
		if _, ok := s[name]; ok {
			return true
		}
	}
	return false
}

// Keep reports whether records of the given type are exported.
func (s EntitySet) Keep(recordType string) bool {
	if recordType == model.TypeCheckpoint {
		return true
	}
	_, ok := s[recordType]
	return ok
}

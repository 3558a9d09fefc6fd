package mapper

import (
	"encoding/json"
	"fmt"

	"suistream/internal/model"
	"suistream/internal/rpc"
)

// Objects maps one multi-get result element into zero or more object
// records, one per entry across the six effect buckets. Object types
// are resolved through an id->type side table built from the
// objectChanges array; ids absent from that table keep an empty type.
func Objects(raw json.RawMessage) ([]*model.Object, error) {
	if err := ensureObject(raw); err != nil {
		return nil, err
	}

	var result rpc.TransactionBlockResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	typeByID := objectTypesByID(result.ObjectChanges)

	var objects []*model.Object
	if effects := result.Effects; effects != nil {
		objects = append(objects, mapOwnedObjects(effects.Created, model.ObjectCreated, typeByID)...)
		objects = append(objects, mapOwnedObjects(effects.Mutated, model.ObjectMutated, typeByID)...)
		objects = append(objects, mapOwnedObjects(effects.Unwrapped, model.ObjectUnwrapped, typeByID)...)
		objects = append(objects, mapUnownedObjects(effects.Deleted, model.ObjectDeleted, typeByID)...)
		objects = append(objects, mapUnownedObjects(effects.UnwrappedThenDeleted, model.ObjectUnwrappedThenDeleted, typeByID)...)
		objects = append(objects, mapUnownedObjects(effects.Wrapped, model.ObjectWrapped, typeByID)...)
	}

	checkpointSeq := result.Checkpoint.Ptr()
	timestampMs := result.TimestampMs.Ptr()
	timestamp := ""
	if timestampMs != nil {
		timestamp = model.FormatTimestampMs(*timestampMs)
	}
	for _, object := range objects {
		object.CheckpointSequenceNumber = checkpointSeq
		object.PreviousTransaction = result.Digest
		object.TimestampMs = timestampMs
		object.Timestamp = timestamp
	}

	return objects, nil
}

// objectTypesByID builds the per-transaction id->type side table from
// the objectChanges variants that carry a type.
func objectTypesByID(changes []rpc.ObjectChange) map[string]string {
	typeByID := make(map[string]string, len(changes))
	for _, change := range changes {
		if id := change.ObjectID(); id != "" {
			typeByID[id] = change.ObjectType()
		}
	}
	return typeByID
}

func mapOwnedObjects(refs []rpc.OwnedObjectRef, status model.ObjectStatus, typeByID map[string]string) []*model.Object {
	objects := make([]*model.Object, 0, len(refs))
	for _, ref := range refs {
		object := &model.Object{
			Type:         model.TypeObject,
			ObjectStatus: status,
		}
		owner := model.ParseOwner(ref.Owner)
		object.OwnerType = string(owner.Kind)
		object.OwnerAddress = owner.Address
		object.InitialSharedVersion = owner.InitialSharedVersion
		if ref.Reference != nil {
			object.ObjectID = ref.Reference.ObjectID
			object.Version = ref.Reference.Version.Ptr()
			object.ObjectDigest = ref.Reference.Digest
		}
		object.ObjectType = typeByID[object.ObjectID]
		objects = append(objects, object)
	}
	return objects
}

func mapUnownedObjects(refs []rpc.ObjectRef, status model.ObjectStatus, typeByID map[string]string) []*model.Object {
	objects := make([]*model.Object, 0, len(refs))
	for _, ref := range refs {
		objects = append(objects, &model.Object{
			Type:         model.TypeObject,
			ObjectStatus: status,
			ObjectID:     ref.ObjectID,
			Version:      ref.Version.Ptr(),
			ObjectDigest: ref.Digest,
			ObjectType:   typeByID[ref.ObjectID],
		})
	}
	return objects
}

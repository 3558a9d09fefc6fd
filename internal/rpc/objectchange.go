package rpc

import "encoding/json"

// ObjectChangeKind discriminates the objectChanges array entries.
type ObjectChangeKind string

const (
	ObjectChangePublished   ObjectChangeKind = "published"
	ObjectChangeTransferred ObjectChangeKind = "transferred"
	ObjectChangeMutated     ObjectChangeKind = "mutated"
	ObjectChangeDeleted     ObjectChangeKind = "deleted"
	ObjectChangeWrapped     ObjectChangeKind = "wrapped"
	ObjectChangeCreated     ObjectChangeKind = "created"
	ObjectChangeUnknown     ObjectChangeKind = ""
)

// PublishedChange announces a new package.
type PublishedChange struct {
	PackageID string   `json:"packageId"`
	Version   Int64    `json:"version"`
	Digest    string   `json:"digest"`
	Modules   []string `json:"modules"`
}

// TransferredChange moves an object to a new owner.
type TransferredChange struct {
	Sender     string          `json:"sender"`
	Recipient  json.RawMessage `json:"recipient"`
	ObjectType string          `json:"objectType"`
	ObjectID   string          `json:"objectId"`
	Version    Int64           `json:"version"`
	Digest     string          `json:"digest"`
}

// MutatedChange rewrites an existing object.
type MutatedChange struct {
	Sender          string          `json:"sender"`
	Owner           json.RawMessage `json:"owner"`
	ObjectType      string          `json:"objectType"`
	ObjectID        string          `json:"objectId"`
	Version         Int64           `json:"version"`
	PreviousVersion Int64           `json:"previousVersion"`
	Digest          string          `json:"digest"`
}

// DeletedChange removes an object.
type DeletedChange struct {
	Sender     string `json:"sender"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
	Version    Int64  `json:"version"`
}

// WrappedChange hides an object inside another.
type WrappedChange struct {
	Sender     string `json:"sender"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
	Version    Int64  `json:"version"`
}

// CreatedChange introduces a new object.
type CreatedChange struct {
	Sender     string          `json:"sender"`
	Owner      json.RawMessage `json:"owner"`
	ObjectType string          `json:"objectType"`
	ObjectID   string          `json:"objectId"`
	Version    Int64           `json:"version"`
	Digest     string          `json:"digest"`
}

// ObjectChange is the tagged union over the six objectChanges payload
// shapes. Exactly one variant pointer is set for a recognized tag;
// unrecognized tags decode to Kind ObjectChangeUnknown with no payload
// rather than failing.
type ObjectChange struct {
	Kind        ObjectChangeKind
	Published   *PublishedChange
	Transferred *TransferredChange
	Mutated     *MutatedChange
	Deleted     *DeletedChange
	Wrapped     *WrappedChange
	Created     *CreatedChange
}

func (c *ObjectChange) UnmarshalJSON(b []byte) error {
	*c = ObjectChange{}

	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return nil
	}

	switch ObjectChangeKind(tag.Type) {
	case ObjectChangePublished:
		var v PublishedChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangePublished, Published: &v}
		}
	case ObjectChangeTransferred:
		var v TransferredChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangeTransferred, Transferred: &v}
		}
	case ObjectChangeMutated:
		var v MutatedChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangeMutated, Mutated: &v}
		}
	case ObjectChangeDeleted:
		var v DeletedChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangeDeleted, Deleted: &v}
		}
	case ObjectChangeWrapped:
		var v WrappedChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangeWrapped, Wrapped: &v}
		}
	case ObjectChangeCreated:
		var v CreatedChange
		if err := json.Unmarshal(b, &v); err == nil {
			*c = ObjectChange{Kind: ObjectChangeCreated, Created: &v}
		}
	}
	return nil
}

// ObjectID returns the changed object's id, or "" for variants that do
// not name one (published, unknown).
func (c ObjectChange) ObjectID() string {
	switch c.Kind {
	case ObjectChangeTransferred:
		return c.Transferred.ObjectID
	case ObjectChangeMutated:
		return c.Mutated.ObjectID
	case ObjectChangeDeleted:
		return c.Deleted.ObjectID
	case ObjectChangeWrapped:
		return c.Wrapped.ObjectID
	case ObjectChangeCreated:
		return c.Created.ObjectID
	default:
		return ""
	}
}

// ObjectType returns the changed object's Move type, or "" when the
// variant carries none.
func (c ObjectChange) ObjectType() string {
	switch c.Kind {
	case ObjectChangeTransferred:
		return c.Transferred.ObjectType
	case ObjectChangeMutated:
		return c.Mutated.ObjectType
	case ObjectChangeDeleted:
		return c.Deleted.ObjectType
	case ObjectChangeWrapped:
		return c.Wrapped.ObjectType
	case ObjectChangeCreated:
		return c.Created.ObjectType
	default:
		return ""
	}
}

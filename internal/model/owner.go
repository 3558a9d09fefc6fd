package model

import (
	"bytes"
	"encoding/json"
)

// OwnerKind tags the ownership model of an object.
type OwnerKind string

const (
	OwnerUnknown   OwnerKind = ""
	OwnerImmutable OwnerKind = "immutable"
	OwnerAddress   OwnerKind = "address_owner"
	OwnerObject    OwnerKind = "object_owner"
	OwnerShared    OwnerKind = "shared"
)

// Owner is the normalized form of the RPC owner union, which arrives
// either as the bare string "Immutable" or as an object with exactly
// one of the AddressOwner, ObjectOwner, or Shared keys. Unrecognized
// or absent shapes normalize to OwnerUnknown with empty fields.
type Owner struct {
	Kind                 OwnerKind
	Address              string
	InitialSharedVersion *int64
}

type sharedOwner struct {
	InitialSharedVersion json.RawMessage `json:"initial_shared_version"`
}

type objectOwner struct {
	AddressOwner *string      `json:"AddressOwner"`
	ObjectOwner  *string      `json:"ObjectOwner"`
	Shared       *sharedOwner `json:"Shared"`
}

// ParseOwner normalizes a raw owner value. It never fails: anything it
// does not recognize comes back as OwnerUnknown.
func ParseOwner(raw json.RawMessage) Owner {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Owner{}
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Owner{}
		}
		if s == "Immutable" {
			return Owner{Kind: OwnerImmutable}
		}
		return Owner{}
	}

	var obj objectOwner
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Owner{}
	}

	switch {
	case obj.AddressOwner != nil:
		return Owner{Kind: OwnerAddress, Address: *obj.AddressOwner}
	case obj.ObjectOwner != nil:
		return Owner{Kind: OwnerObject, Address: *obj.ObjectOwner}
	case obj.Shared != nil:
		return Owner{Kind: OwnerShared, InitialSharedVersion: parseVersion(obj.Shared.InitialSharedVersion)}
	default:
		return Owner{}
	}
}

// parseVersion accepts the shared version as either a JSON number or a
// numeric string; both encodings occur across protocol versions.
func parseVersion(raw json.RawMessage) *int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		raw = []byte(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil
	}
	return &v
}

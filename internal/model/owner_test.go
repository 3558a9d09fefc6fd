package model

import (
	"encoding/json"
	"testing"
)

func TestParseOwnerTotality(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    OwnerKind
		wantAddress string
		wantShared  *int64
	}{
		{"immutable", `"Immutable"`, OwnerImmutable, "", nil},
		{"address owner", `{"AddressOwner":"0xabc"}`, OwnerAddress, "0xabc", nil},
		{"object owner", `{"ObjectOwner":"0xdef"}`, OwnerObject, "0xdef", nil},
		{"shared", `{"Shared":{"initial_shared_version":7}}`, OwnerShared, "", ptr(7)},
		{"shared string version", `{"Shared":{"initial_shared_version":"7"}}`, OwnerShared, "", ptr(7)},
		{"null", `null`, OwnerUnknown, "", nil},
		{"empty", ``, OwnerUnknown, "", nil},
		{"unrecognized string", `"ConsensusV2"`, OwnerUnknown, "", nil},
		{"unrecognized object", `{"Something":"else"}`, OwnerUnknown, "", nil},
		{"array", `[1,2]`, OwnerUnknown, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := ParseOwner(json.RawMessage(tt.input))
			if owner.Kind != tt.wantKind {
				t.Fatalf("kind mismatch: %q != %q", owner.Kind, tt.wantKind)
			}
			if owner.Address != tt.wantAddress {
				t.Fatalf("address mismatch: %q != %q", owner.Address, tt.wantAddress)
			}
			if (owner.InitialSharedVersion == nil) != (tt.wantShared == nil) {
				t.Fatalf("shared version presence mismatch: %v", owner.InitialSharedVersion)
			}
			if owner.InitialSharedVersion != nil && *owner.InitialSharedVersion != *tt.wantShared {
				t.Fatalf("shared version mismatch: %d != %d", *owner.InitialSharedVersion, *tt.wantShared)
			}
		})
	}
}

func TestFormatTimestampMs(t *testing.T) {
	if got := FormatTimestampMs(1700000000000); got != "2023-11-14T22:13:20Z" {
		t.Fatalf("timestamp mismatch: %q", got)
	}
	// Sub-second precision is truncated, not rounded or rendered.
	if got := FormatTimestampMs(1700000000999); got != "2023-11-14T22:13:20Z" {
		t.Fatalf("timestamp truncation mismatch: %q", got)
	}
}

func ptr(v int64) *int64 { return &v }

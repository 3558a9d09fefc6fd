package rpc

import (
	"encoding/json"
	"testing"
)

func TestInt64Permissive(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		valid bool
	}{
		{"number", `42`, 42, true},
		{"numeric string", `"9007199254740993"`, 9007199254740993, true},
		{"null", `null`, 0, false},
		{"non-numeric string", `"abc"`, 0, false},
		{"float", `1.5`, 0, false},
		{"object", `{}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Int64
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Valid != tt.valid {
				t.Fatalf("valid mismatch: got %v", v.Valid)
			}
			if v.Valid && v.Int64 != tt.want {
				t.Fatalf("value mismatch: %d != %d", v.Int64, tt.want)
			}
		})
	}
}

func TestBigStringLossless(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quoted", `"18446744073709551615"`, "18446744073709551615"},
		{"number", `18446744073709551615`, "18446744073709551615"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s BigString
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.String() != tt.want {
				t.Fatalf("value mismatch: %q != %q", s.String(), tt.want)
			}
		})
	}
}

func TestObjectChangeVariants(t *testing.T) {
	var created ObjectChange
	input := `{"type":"created","sender":"0xaaa","owner":{"AddressOwner":"0xbbb"},"objectType":"0x2::coin::Coin","objectId":"0xobj","version":"3","digest":"Dg"}`
	if err := json.Unmarshal([]byte(input), &created); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Kind != ObjectChangeCreated || created.Created == nil {
		t.Fatalf("expected created variant, got %+v", created)
	}
	if created.ObjectID() != "0xobj" || created.ObjectType() != "0x2::coin::Coin" {
		t.Fatalf("accessor mismatch: %q %q", created.ObjectID(), created.ObjectType())
	}

	var published ObjectChange
	if err := json.Unmarshal([]byte(`{"type":"published","packageId":"0xpkg","version":1,"digest":"Dg","modules":["m"]}`), &published); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if published.Kind != ObjectChangePublished || published.Published == nil {
		t.Fatalf("expected published variant, got %+v", published)
	}
	if published.ObjectID() != "" {
		t.Fatalf("published change must not name an object id")
	}

	var unknown ObjectChange
	if err := json.Unmarshal([]byte(`{"type":"somethingNew","objectId":"0xobj"}`), &unknown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown.Kind != ObjectChangeUnknown {
		t.Fatalf("expected unknown variant, got %q", unknown.Kind)
	}
}

func TestRawText(t *testing.T) {
	if got := RawText(json.RawMessage(`"hello"`)); got != "hello" {
		t.Fatalf("quoted string mismatch: %q", got)
	}
	if got := RawText(json.RawMessage(`{"a":1}`)); got != `{"a":1}` {
		t.Fatalf("object passthrough mismatch: %q", got)
	}
	if got := RawText(nil); got != "" {
		t.Fatalf("nil must render empty, got %q", got)
	}
	if got := RawText(json.RawMessage(`null`)); got != "" {
		t.Fatalf("null must render empty, got %q", got)
	}
}

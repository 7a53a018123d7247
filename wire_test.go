package kview

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestConsumeFieldReturnsViewIntoBuffer(t *testing.T) {
	b := AppendField(nil, 3, Literal("probe"))
	b = AppendField(b, 4, Literal(""))

	num, v, n, err := ConsumeField(b)
	if err != nil {
		t.Fatalf("ConsumeField failed: %v", err)
	}
	if num != 3 || v.String() != "probe" {
		t.Errorf("ConsumeField = (%d, %q), want (3, %q)", num, v, "probe")
	}
	if v.Data() != &b[n-v.Len()] {
		t.Errorf("view does not point into the input buffer")
	}

	num, v, m, err := ConsumeField(b[n:])
	if err != nil {
		t.Fatalf("ConsumeField failed: %v", err)
	}
	if num != 4 || v.Len() != 0 || n+m != len(b) {
		t.Errorf("ConsumeField = (%d, len %d, %d), want (4, len 0, %d)", num, v.Len(), n+m, len(b)-n)
	}
}

func TestConsumeFieldErrors(t *testing.T) {
	varint := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 7)
	if _, _, _, err := ConsumeField(varint); !errors.Is(err, ErrWireType) {
		t.Errorf("varint field: err = %v, want ErrWireType", err)
	}

	full := AppendField(nil, 1, Literal("truncated"))
	if _, _, _, err := ConsumeField(full[:len(full)-2]); err == nil {
		t.Errorf("truncated field: expected error")
	}
	if _, _, _, err := ConsumeField(nil); err == nil {
		t.Errorf("empty input: expected error")
	}
}

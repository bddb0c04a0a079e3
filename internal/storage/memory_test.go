package storage

import (
	"context"
	"testing"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, found, err := s.Get(ctx, "deals_store"); found || err != nil {
		t.Fatalf("Get on empty store = found %v, err %v", found, err)
	}

	if err := s.Set(ctx, "deals_store", `[]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set(ctx, "deals_store", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	v, found, err := s.Get(ctx, "deals_store")
	if err != nil || !found {
		t.Fatalf("Get = found %v, err %v", found, err)
	}
	if v != `[{"id":"a"}]` {
		t.Errorf("Get = %q, want last written value", v)
	}
}

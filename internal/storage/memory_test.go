package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMemorySaveGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.Save(ctx, "key-1", strings.NewReader("hello"), "text/plain")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := m.Get(ctx, "key-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(data, []byte("hello")) {
		t.Errorf("Get = %q, want hello", data)
	}
}

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "nope")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("error = %v, want ErrObjectNotFound", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_ = m.Save(ctx, "key-1", strings.NewReader("a"), "text/plain")

	if err := m.Delete(ctx, "key-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}

	// Deleting a missing key is not an error
	if err := m.Delete(ctx, "key-1"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestMemoryDeleteBatch(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_ = m.Save(ctx, "a", strings.NewReader("a"), "text/plain")
	_ = m.Save(ctx, "b", strings.NewReader("b"), "text/plain")
	_ = m.Save(ctx, "c", strings.NewReader("c"), "text/plain")

	if err := m.DeleteBatch(ctx, []string{"a", "c", "missing"}); err != nil {
		t.Fatalf("DeleteBatch: %v", err)
	}

	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if _, err := m.Get(ctx, "b"); err != nil {
		t.Errorf("survivor should remain: %v", err)
	}
}

func TestMemoryWaitNotExists(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.WaitNotExists(ctx, "absent"); err != nil {
		t.Errorf("WaitNotExists on absent key: %v", err)
	}

	_ = m.Save(ctx, "present", strings.NewReader("x"), "text/plain")
	if err := m.WaitNotExists(ctx, "present"); err == nil {
		t.Error("WaitNotExists on present key should fail")
	}
}

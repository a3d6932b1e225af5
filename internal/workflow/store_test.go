package workflow

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreLoadMissing(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "workflow.json"))

	_, err := st.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "workflow.json"))
	if err := os.WriteFile(st.Path(), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := st.Load()
	if err == nil {
		t.Fatal("Load() succeeded on corrupt file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("corrupt file reported as not found")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "workflow.json"))
	doc := &Document{
		Tasks: json.RawMessage(`[{"id":"a"}]`),
		Edges: json.RawMessage(`[["a","b"]]`),
	}

	if err := st.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data, err := json.Marshal(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"tasks":[{"id":"a"}],"edges":[["a","b"]]}` {
		t.Errorf("round trip = %s", data)
	}
}

func TestStoreSaveFormat(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "workflow.json"))

	// Nil collections are written out as empty arrays.
	if err := st.Save(&Document{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasSuffix(content, "\n") {
		t.Error("workflow file missing trailing newline")
	}
	if !strings.Contains(content, "\"tasks\": []") {
		t.Errorf("workflow file = %s, want empty tasks array", content)
	}
	if !strings.Contains(content, "\"edges\": []") {
		t.Errorf("workflow file = %s, want empty edges array", content)
	}
}

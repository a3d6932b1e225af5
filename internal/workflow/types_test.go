package workflow

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"tasks":[{"id":"a","title":"First"}],"edges":[["a","b"]]}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if string(doc.Tasks) != `[{"id":"a","title":"First"}]` {
		t.Errorf("tasks = %s", doc.Tasks)
	}
	if string(doc.Edges) != `[["a","b"]]` {
		t.Errorf("edges = %s", doc.Edges)
	}
}

func TestParseDocumentMissingKeysDefault(t *testing.T) {
	doc, err := ParseDocument([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if string(doc.Tasks) != "[]" {
		t.Errorf("tasks = %s, want []", doc.Tasks)
	}
	if string(doc.Edges) != "[]" {
		t.Errorf("edges = %s, want []", doc.Edges)
	}
}

func TestParseDocumentDropsUnknownKeys(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"tasks":[],"edges":[],"zoom":1.5}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"tasks":[],"edges":[]}` {
		t.Errorf("marshaled document = %s", data)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{name: "malformed", payload: `{not json`, want: ErrInvalidJSON},
		{name: "truncated", payload: `{"tasks": [`, want: ErrInvalidJSON},
		{name: "null tasks", payload: `{"tasks":null,"edges":[]}`, want: ErrInvalidPayload},
		{name: "null edges", payload: `{"tasks":[],"edges":null}`, want: ErrInvalidPayload},
		{name: "tasks not an array", payload: `{"tasks":"nope","edges":[]}`, want: ErrInvalidPayload},
		{name: "top-level array", payload: `[1,2,3]`, want: ErrInvalidPayload},
		{name: "top-level string", payload: `"hello"`, want: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.payload))
			if err == nil {
				t.Fatal("ParseDocument() succeeded, want error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseDocument() error = %v, want %v", err, tt.want)
			}
		})
	}
}

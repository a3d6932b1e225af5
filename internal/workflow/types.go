// Package workflow persists the dependency-graph board edited in the browser.
package workflow

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Sentinel errors for handlers to map onto HTTP statuses.
var (
	ErrNotFound       = errors.New("workflow document not found")
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrInvalidPayload = errors.New("invalid payload")
)

// documentSchema accepts any object whose tasks and edges, when present,
// are arrays. Missing keys default to empty arrays after decoding.
var documentSchema = jsonschema.MustCompileString("workflow.schema.json", `{
	"type": "object",
	"properties": {
		"tasks": {"type": "array"},
		"edges": {"type": "array"}
	}
}`)

// Document is a workflow board: tasks plus the edges connecting them.
// Both fields hold raw JSON so the server round-trips whatever node and
// edge shapes the editor sends. Unknown top-level keys are dropped.
type Document struct {
	Tasks json.RawMessage `json:"tasks"`
	Edges json.RawMessage `json:"edges"`
}

// applyDefaults fills missing collections with empty arrays.
func (d *Document) applyDefaults() {
	if d.Tasks == nil {
		d.Tasks = json.RawMessage("[]")
	}
	if d.Edges == nil {
		d.Edges = json.RawMessage("[]")
	}
}

// ParseDocument validates and decodes a workflow payload.
// Errors wrap ErrInvalidJSON for malformed JSON and ErrInvalidPayload
// for well-formed JSON of the wrong shape.
func ParseDocument(data []byte) (*Document, error) {
	var payload interface{}
	if err := sonic.ConfigStd.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if err := documentSchema.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var doc Document
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	doc.applyDefaults()
	return &doc, nil
}

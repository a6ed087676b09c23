package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidInput is returned when a vocabulary payload is malformed: not a
// JSON array, empty, with entries missing required fields, or with two
// entries sharing an id. A missing id is the entry's position, so in a list
// that mixes explicit and missing ids an explicit id equal to another
// entry's position is a duplicate.
var ErrInvalidInput = errors.New("invalid vocabulary input")

// payloadSchema describes the vocabulary file format.
var payloadSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "integer", "minimum": 0},
			"front": map[string]any{"type": "string", "minLength": 1},
			"back": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"meaning":        map[string]any{"type": "string", "minLength": 1},
					"hanzi_pinyin":   map[string]any{"type": "string"},
					"part_of_speech": map[string]any{"type": "string"},
					"measure_word":   map[string]any{"type": "string"},
					"example":        map[string]any{"type": "string"},
				},
				"required": []any{"meaning"},
			},
		},
		"required": []any{"front", "back"},
	},
}

const payloadSchemaURL = "schema://vocabulary.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getSchema compiles the payload schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go literals.
		defBytes, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(payloadSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(payloadSchemaURL)
	})
	return compiledSchema, compileErr
}

// entry is the wire form of a word; ID is optional in source data.
type entry struct {
	ID    *int   `json:"id"`
	Front string `json:"front"`
	Back  Back   `json:"back"`
}

// Parse validates a JSON vocabulary payload and returns its words.
// Entries without an id get their position in the list.
func Parse(raw []byte) ([]Word, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidInput, err)
	}

	compiled, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("compile vocabulary schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode entries: %v", ErrInvalidInput, err)
	}
	return assignIDs(entries)
}

// assignIDs converts wire entries to words, filling missing ids with the
// load-order index and rejecting duplicates, including a fallback id that
// collides with an explicit one.
func assignIDs(entries []entry) ([]Word, error) {
	words := make([]Word, len(entries))
	seen := make(map[int]int, len(entries))
	for i, e := range entries {
		id := i
		if e.ID != nil {
			id = *e.ID
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: entries %d and %d share id %d", ErrInvalidInput, prev, i, id)
		}
		seen[id] = i
		words[i] = Word{ID: id, Front: e.Front, Back: e.Back}
	}
	return words, nil
}

// Validate checks an already-decoded word list: it must be non-empty and
// ids must be unique.
func Validate(words []Word) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: empty word list", ErrInvalidInput)
	}
	seen := make(map[int]bool, len(words))
	for i, w := range words {
		if w.Front == "" {
			return fmt.Errorf("%w: entry %d has no front text", ErrInvalidInput, i)
		}
		if seen[w.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidInput, w.ID)
		}
		seen[w.ID] = true
	}
	return nil
}

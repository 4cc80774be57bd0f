// Package ingest parses raw choreography sequence files into motion
// sequences, validating them against an embedded CUE schema first.
package ingest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/austencloud/tka-scribe-sub012/internal/motion"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
)

// sequenceSchema compiles the embedded schema exactly once and returns
// the #Sequence definition. The schema is part of the build; a compile
// failure is a programming error, hence the panic.
func sequenceSchema() cue.Value {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			panic(fmt.Sprintf("ingest: embedded schema does not compile: %v", err))
		}
		schemaValue = v.LookupPath(cue.ParsePath("#Sequence"))
	})
	return schemaValue
}

// ValidationError is one schema violation found in a sequence file.
type ValidationError struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// SchemaError aggregates the schema violations of one file.
type SchemaError struct {
	Filename string
	Errors   []ValidationError
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %d schema violation(s): %s", e.Filename, len(e.Errors), e.Errors[0].Message)
}

// Validate checks raw file bytes against the sequence schema without
// building a motion.Sequence. Returns nil when the data conforms.
func Validate(filename string, data []byte) error {
	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	// The data value must come from the same context that compiled the
	// schema; Unify across contexts is not supported.
	schema := sequenceSchema()
	value := schema.Context().BuildExpr(expr)
	if err := value.Err(); err != nil {
		return fmt.Errorf("building value for %s: %w", filename, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		se := &SchemaError{Filename: filename}
		for _, e := range cueerrors.Errors(err) {
			se.Errors = append(se.Errors, ValidationError{
				Path:    strings.Join(cueerrors.Path(e), "."),
				Message: e.Error(),
			})
		}
		return se
	}
	return nil
}

// Parse validates raw file bytes and decodes them into a sequence. The
// leading metadata object (recognized by the absence of a beat field) is
// folded into the sequence header; every remaining element must be a
// beat record.
func Parse(filename string, data []byte) (motion.Sequence, error) {
	if err := Validate(filename, data); err != nil {
		return motion.Sequence{}, err
	}

	var rawEntries []json.RawMessage
	if err := json.Unmarshal(data, &rawEntries); err != nil {
		return motion.Sequence{}, fmt.Errorf("parsing %s: %w", filename, err)
	}

	var seq motion.Sequence
	for i, raw := range rawEntries {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(raw, &probe); err != nil {
			return motion.Sequence{}, fmt.Errorf("%s: entry %d: %w", filename, i, err)
		}

		if _, hasBeat := probe["beat"]; !hasBeat {
			if i != 0 {
				return motion.Sequence{}, fmt.Errorf("%s: entry %d: metadata object allowed only at position 0", filename, i)
			}
			var meta struct {
				Word   string `json:"word"`
				Author string `json:"author"`
			}
			if err := json.Unmarshal(raw, &meta); err != nil {
				return motion.Sequence{}, fmt.Errorf("%s: metadata: %w", filename, err)
			}
			seq.Word = meta.Word
			seq.Author = meta.Author
			continue
		}

		var rec motion.BeatRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return motion.Sequence{}, fmt.Errorf("%s: entry %d: %w", filename, i, err)
		}
		seq.Entries = append(seq.Entries, rec)
	}

	if len(seq.Entries) == 0 {
		return motion.Sequence{}, fmt.Errorf("%s: no beat records", filename)
	}
	return seq, nil
}

// LoadFile reads, validates, and parses a sequence file.
func LoadFile(path string) (motion.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return motion.Sequence{}, fmt.Errorf("reading sequence file: %w", err)
	}
	return Parse(path, data)
}

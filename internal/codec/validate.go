package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled request schemas by name
var compiledSchemas sync.Map

// validate checks a request document against its schema. Numbers are kept
// as json.Number so ratio terms near the uint32 limit are checked exactly.
func validate(schema *Schema, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &DecodeError{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := requestSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	err = compiled.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		leaf := deepestCause(verr)
		return &DecodeError{
			Schema: schema.Name,
			Path:   "/" + strings.Join(leaf.InstanceLocation, "/"),
			Err:    err,
		}
	}
	if err != nil {
		return &DecodeError{Schema: schema.Name, Err: err}
	}
	return nil
}

// deepestCause follows the first cause chain down to the innermost
// failure, which points at the offending field.
func deepestCause(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return verr
}

func requestSchema(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiledSchemas.Load(schema.Name); ok {
		return s.(*jsonschema.Schema), nil
	}

	// Definitions hold typed Go slices; round-trip them into plain JSON values.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	url := "schema://" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(schema.Name, s)
	return s, nil
}

// Package validator provides JSON Schema validation for configuration documents.
package validator

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator represents something which can be used to validate a parsed document.
type Validator interface {
	// Validate validates a JSON-compatible document (the result of json.Unmarshal).
	Validate(doc any) error
}

// santhoshValidator wraps jsonschema.Schema to implement Validator.
// Using the santhosh-tekuri/jsonschema/v6 package.
type santhoshValidator struct {
	s *jsonschema.Schema
}

// Validate adapts jsonschema.Schema.Validate to match the Validator interface.
func (sv *santhoshValidator) Validate(doc any) error {
	return sv.s.Validate(doc)
}

// CompileBytes compiles raw JSON Schema text registered under the given id.
func CompileBytes(id string, data []byte) (Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", id, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(id, doc); err != nil {
		return nil, fmt.Errorf("adding schema %s: %w", id, err)
	}

	s, err := c.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", id, err)
	}
	return &santhoshValidator{s: s}, nil
}

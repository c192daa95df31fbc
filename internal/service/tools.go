package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"commandr-api/internal/inference"
)

// ToolSpec is the wire form of a tool in a tool-use request. Fields are
// pointers so that validation can distinguish an absent field from a
// zero-valued one.
type ToolSpec struct {
	Name                 *string    `json:"name"`
	Description          *string    `json:"description"`
	ParameterDefinitions *ParamDefs `json:"parameter_definitions"`
}

// ParamDef is the wire form of one parameter definition. All three fields
// are mandatory; pointers preserve presence for validation.
type ParamDef struct {
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Required    *bool   `json:"required"`
}

// ParamDefs is an ordered set of parameter definitions. JSON objects lose
// key order through a plain map, but validation reports the first offending
// parameter in insertion order, so decoding keeps the order of the source
// object.
type ParamDefs struct {
	names []string
	defs  map[string]ParamDef
}

// UnmarshalJSON decodes a JSON object into an ordered ParamDefs.
func (p *ParamDefs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parameter_definitions must be a JSON object")
	}

	p.names = nil
	p.defs = make(map[string]ParamDef)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("parameter_definitions has a non-string key")
		}

		var def ParamDef
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("invalid definition for parameter %q: %w", name, err)
		}

		if _, seen := p.defs[name]; !seen {
			p.names = append(p.names, name)
		}
		p.defs[name] = def
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the definitions preserving insertion order.
func (p ParamDefs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.defs[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Names returns the parameter names in insertion order.
func (p ParamDefs) Names() []string {
	return p.names
}

// Get returns the definition for the named parameter.
func (p ParamDefs) Get(name string) (ParamDef, bool) {
	def, ok := p.defs[name]
	return def, ok
}

// Len returns the number of parameter definitions.
func (p ParamDefs) Len() int {
	return len(p.names)
}

// toInference converts a validated ToolSpec into the collaborator's tool
// type. Callers must have run ValidateTools first; absent fields would
// panic here otherwise.
func (t ToolSpec) toInference() inference.Tool {
	tool := inference.Tool{
		Name:        *t.Name,
		Description: *t.Description,
	}
	for _, name := range t.ParameterDefinitions.Names() {
		def, _ := t.ParameterDefinitions.Get(name)
		tool.Parameters = append(tool.Parameters, inference.Parameter{
			Name:        name,
			Description: *def.Description,
			Type:        *def.Type,
			Required:    *def.Required,
		})
	}
	return tool
}

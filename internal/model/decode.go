package model

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/rbigen/internal/rubyname"
)

// ErrInvalidDeclaration matches any [DecodeError] via errors.Is.
var ErrInvalidDeclaration = errors.New("invalid declaration file")

// DecodeError reports a problem at a position in a declaration file.
type DecodeError struct {
	File string
	// Line is 1-based; 0 when the position is unknown.
	Line int
	Msg  string
}

// Error returns "file:line: msg".
func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

func decodeErrorf(file string, line int, format string, args ...any) error {
	return errors.WithStack(&DecodeError{File: file, Line: line, Msg: fmt.Sprintf(format, args...)})
}

// Parse decodes and validates a declaration file. name is used in error
// messages only.
func Parse(name string, data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, decodeErrorf(name, 0, "%v", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decodeErrorf(name, 0, "%v", err)
	}
	if len(doc.Content) > 0 {
		if seq := mappingValue(doc.Content[0], "declarations"); seq != nil {
			attachLines(f.Declarations, seq)
		}
	}

	if err := f.Validate(name); err != nil {
		return nil, err
	}
	return &f, nil
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// attachLines copies source lines from the parsed node tree onto decls.
func attachLines(decls []*Declaration, seq *yaml.Node) {
	if seq.Kind != yaml.SequenceNode {
		return
	}
	for i, item := range seq.Content {
		if i >= len(decls) || decls[i] == nil {
			break
		}
		d := decls[i]
		d.Line = item.Line
		if params := mappingValue(item, "parameters"); params != nil && params.Kind == yaml.SequenceNode {
			for j, p := range params.Content {
				if j < len(d.Parameters) && d.Parameters[j] != nil {
					d.Parameters[j].Line = p.Line
				}
			}
		}
		if children := mappingValue(item, "children"); children != nil {
			attachLines(d.Children, children)
		}
	}
}

// Validate checks kinds, required fields and names. The first problem found
// is returned as a [*DecodeError].
func (f *File) Validate(name string) error {
	return validateAll(name, f.Declarations)
}

func validateAll(file string, decls []*Declaration) error {
	for _, d := range decls {
		if d == nil {
			return decodeErrorf(file, 0, "empty declaration")
		}
		if err := d.validate(file); err != nil {
			return err
		}
	}
	return nil
}

func (d *Declaration) validate(file string) error {
	fail := func(format string, args ...any) error {
		return decodeErrorf(file, d.Line, format, args...)
	}

	if d.Kind == "" {
		return fail("missing kind")
	}
	if len(d.Children) > 0 && !d.Kind.IsNamespace() {
		return fail("%s %q cannot have children", d.Kind, d.Name)
	}

	switch d.Kind {
	case KindModule, KindClass:
		if !rubyname.IsConstant(d.Name) {
			return fail("invalid %s name %q", d.Kind, d.Name)
		}
		if d.Kind == KindModule && d.Superclass != "" {
			return fail("module %q cannot have a superclass", d.Name)
		}
		if d.Superclass != "" && !rubyname.IsConstantPath(d.Superclass) {
			return fail("invalid superclass %q", d.Superclass)
		}
		return validateAll(file, d.Children)

	case KindMethod:
		if !rubyname.IsMethod(d.Name) {
			return fail("invalid method name %q", d.Name)
		}
		seen := make(map[string]bool, len(d.Parameters))
		for _, p := range d.Parameters {
			if p == nil || p.Name == "" {
				return fail("method %q has a parameter without a name", d.Name)
			}
			line := p.Line
			if line == 0 {
				line = d.Line
			}
			switch bare := rubyname.ParameterName(p.Name); {
			case !rubyname.IsParameter(p.Name):
				return decodeErrorf(file, line, "method %q: invalid parameter name %q", d.Name, p.Name)
			case p.Default != nil && !rubyname.TakesDefault(p.Name):
				return decodeErrorf(file, line, "method %q: parameter %q cannot have a default", d.Name, p.Name)
			case seen[bare]:
				return decodeErrorf(file, line, "method %q: duplicate parameter %q", d.Name, bare)
			default:
				seen[bare] = true
			}
		}

	case KindAttribute:
		if !rubyname.IsIdentifier(d.Name) {
			return fail("invalid attribute name %q", d.Name)
		}
		switch d.Access {
		case "reader", "writer", "accessor":
		case "":
			return fail("attribute %q: missing access", d.Name)
		default:
			return fail("attribute %q: unknown access %q (want reader, writer or accessor)", d.Name, d.Access)
		}
		if d.Type == "" {
			return fail("attribute %q: missing type", d.Name)
		}

	case KindConstant:
		if !rubyname.IsConstant(d.Name) {
			return fail("invalid constant name %q", d.Name)
		}
		if d.Value == "" {
			return fail("constant %q: missing value", d.Name)
		}

	case KindTypeAlias:
		if !rubyname.IsConstant(d.Name) {
			return fail("invalid type alias name %q", d.Name)
		}
		if d.Type == "" {
			return fail("type alias %q: missing type", d.Name)
		}

	case KindInclude, KindExtend:
		if !rubyname.IsConstantPath(d.Name) {
			return fail("invalid %s module %q", d.Kind, d.Name)
		}

	case KindArbitrary:
		if d.Code == "" {
			return fail("arbitrary declaration without code")
		}

	default:
		return fail("unknown kind %q", d.Kind)
	}
	return nil
}

package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr(s string) *string { return &s }

func TestParse(t *testing.T) {
	input := `
strictness: strict
declarations:
  - kind: module
    name: Foo
    comments: [The Foo module]
    children:
      - kind: class
        name: Bar
        superclass: Base
        final: true
        children:
          - kind: method
            name: greet
            parameters:
              - name: greeting
                type: String
              - name: "loud:"
                type: T::Boolean
                default: "false"
            returns: String
  - kind: arbitrary
    code: "require 'foo'"
`
	f, err := Parse("decls.yaml", []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &File{
		Strictness: "strict",
		Declarations: []*Declaration{
			{
				Kind:     KindModule,
				Name:     "Foo",
				Comments: []string{"The Foo module"},
				Line:     4,
				Children: []*Declaration{
					{
						Kind:       KindClass,
						Name:       "Bar",
						Superclass: "Base",
						Final:      true,
						Line:       8,
						Children: []*Declaration{
							{
								Kind: KindMethod,
								Name: "greet",
								Parameters: []*Parameter{
									{Name: "greeting", Type: "String", Line: 16},
									{Name: "loud:", Type: "T::Boolean", Default: ptr("false"), Line: 18},
								},
								Returns: "String",
								Line:    13,
							},
						},
					},
				},
			},
			{Kind: KindArbitrary, Code: "require 'foo'", Line: 22},
		},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSON(t *testing.T) {
	input := `{"declarations": [{"kind": "constant", "name": "VERSION", "value": "\"1.0\""}]}`
	f, err := Parse("decls.json", []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Declarations) != 1 || f.Declarations[0].Value != `"1.0"` {
		t.Errorf("got %+v", f.Declarations)
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse("empty.yaml", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Declarations) != 0 {
		t.Errorf("got %d declarations, want 0", len(f.Declarations))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:    "unknown field",
			input:   "declarations:\n  - kind: module\n    name: Foo\n    colour: red\n",
			wantMsg: "field colour not found",
		},
		{
			name:     "unknown kind",
			input:    "declarations:\n  - kind: module\n    name: Foo\n  - kind: struct\n    name: Bar\n",
			wantLine: 4,
			wantMsg:  `unknown kind "struct"`,
		},
		{
			name:     "missing kind",
			input:    "declarations:\n  - name: Foo\n",
			wantLine: 2,
			wantMsg:  "missing kind",
		},
		{
			name:     "bad module name",
			input:    "declarations:\n  - kind: module\n    name: foo\n",
			wantLine: 2,
			wantMsg:  `invalid module name "foo"`,
		},
		{
			name:     "module superclass",
			input:    "declarations:\n  - kind: module\n    name: Foo\n    superclass: Bar\n",
			wantLine: 2,
			wantMsg:  "cannot have a superclass",
		},
		{
			name:     "children on a method",
			input:    "declarations:\n  - kind: method\n    name: foo\n    children:\n      - kind: module\n        name: X\n",
			wantLine: 2,
			wantMsg:  "cannot have children",
		},
		{
			name:     "nested error",
			input:    "declarations:\n  - kind: module\n    name: Foo\n    children:\n      - kind: attribute\n        name: size\n        access: reader\n",
			wantLine: 5,
			wantMsg:  `attribute "size": missing type`,
		},
		{
			name:     "bad access",
			input:    "declarations:\n  - kind: attribute\n    name: size\n    access: both\n    type: Integer\n",
			wantLine: 2,
			wantMsg:  "unknown access",
		},
		{
			name:     "constant without value",
			input:    "declarations:\n  - kind: constant\n    name: X\n",
			wantLine: 2,
			wantMsg:  "missing value",
		},
		{
			name:     "arbitrary without code",
			input:    "declarations:\n  - kind: arbitrary\n",
			wantLine: 2,
			wantMsg:  "without code",
		},
		{
			name:     "unnamed parameter",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - type: String\n",
			wantLine: 2,
			wantMsg:  "parameter without a name",
		},
		{
			name:     "parameter with a space",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - name: foo bar\n        type: Integer\n",
			wantLine: 5,
			wantMsg:  `invalid parameter name "foo bar"`,
		},
		{
			name:     "anonymous splat",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - name: x\n      - name: \"*\"\n",
			wantLine: 6,
			wantMsg:  `invalid parameter name "*"`,
		},
		{
			name:     "splat with default",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - name: \"*rest\"\n        default: \"[]\"\n",
			wantLine: 5,
			wantMsg:  `parameter "*rest" cannot have a default`,
		},
		{
			name:     "block with default",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - name: \"&blk\"\n        default: nil\n",
			wantLine: 5,
			wantMsg:  "cannot have a default",
		},
		{
			name:     "duplicate parameter",
			input:    "declarations:\n  - kind: method\n    name: foo\n    parameters:\n      - name: opt\n      - name: \"opt:\"\n",
			wantLine: 6,
			wantMsg:  `duplicate parameter "opt"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("decls.yaml", []byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidDeclaration) {
				t.Errorf("error %v does not match ErrInvalidDeclaration", err)
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not a *DecodeError", err)
			}
			if de.File != "decls.yaml" {
				t.Errorf("File = %q, want decls.yaml", de.File)
			}
			if tt.wantLine != 0 && de.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", de.Line, tt.wantLine)
			}
			if !strings.Contains(de.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want it to contain %q", de.Msg, tt.wantMsg)
			}
		})
	}
}

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{File: "a.yaml", Line: 3, Msg: "boom"}, "a.yaml:3: boom"},
		{&DecodeError{File: "a.yaml", Msg: "boom"}, "a.yaml: boom"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestKind_IsNamespace(t *testing.T) {
	for _, k := range Kinds {
		want := k == KindModule || k == KindClass
		if got := k.IsNamespace(); got != want {
			t.Errorf("%s.IsNamespace() = %v, want %v", k, got, want)
		}
	}
}

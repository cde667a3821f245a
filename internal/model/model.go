// Package model defines the data structures of rbigen declaration files.
//
// A declaration file is a YAML (or JSON) document listing the Ruby
// namespaces, methods, attributes and other members that a project wants
// described in its RBI output. The declfile plugin turns a decoded File into
// rbi entities.
package model

// Kind names a declaration kind.
type Kind string

// Declaration kinds.
const (
	KindModule    Kind = "module"
	KindClass     Kind = "class"
	KindMethod    Kind = "method"
	KindAttribute Kind = "attribute"
	KindConstant  Kind = "constant"
	KindInclude   Kind = "include"
	KindExtend    Kind = "extend"
	KindTypeAlias Kind = "type_alias"
	KindArbitrary Kind = "arbitrary"
)

// Kinds lists every valid kind in documentation order.
var Kinds = []Kind{
	KindModule, KindClass, KindMethod, KindAttribute, KindConstant,
	KindInclude, KindExtend, KindTypeAlias, KindArbitrary,
}

// IsNamespace reports whether declarations of this kind may have children.
func (k Kind) IsNamespace() bool {
	return k == KindModule || k == KindClass
}

// File is a decoded declaration file.
type File struct {
	// Strictness is the sigil level the file asks for (e.g. "strict").
	// Empty means no preference.
	Strictness string `yaml:"strictness,omitempty"`

	// Declarations are the top-level declarations, in file order.
	Declarations []*Declaration `yaml:"declarations"`
}

// Declaration is one member of a declaration file.
//
// The Kind field determines which other fields are relevant:
//   - "module", "class": Superclass (class only), Final, Sealed, Abstract,
//     Interface, Children
//   - "method": Parameters, Returns, Abstract, Override, Overridable, Final,
//     TypeParameters, Singleton
//   - "attribute": Access, Type, Singleton
//   - "constant": Value, Singleton
//   - "type_alias": Type
//   - "include", "extend": Name is the mixed-in module
//   - "arbitrary": Code
type Declaration struct {
	Kind     Kind     `yaml:"kind"`
	Name     string   `yaml:"name,omitempty"`
	Comments []string `yaml:"comments,omitempty"`

	// Singleton places a method, attribute or constant on the singleton
	// class.
	Singleton bool `yaml:"singleton,omitempty"`

	Superclass string         `yaml:"superclass,omitempty"`
	Final      bool           `yaml:"final,omitempty"`
	Sealed     bool           `yaml:"sealed,omitempty"`
	Abstract   bool           `yaml:"abstract,omitempty"`
	Interface  bool           `yaml:"interface,omitempty"`
	Children   []*Declaration `yaml:"children,omitempty"`

	Parameters     []*Parameter `yaml:"parameters,omitempty"`
	Returns        string       `yaml:"returns,omitempty"`
	Override       bool         `yaml:"override,omitempty"`
	Overridable    bool         `yaml:"overridable,omitempty"`
	TypeParameters []string     `yaml:"type_parameters,omitempty"`

	// Access is "reader", "writer" or "accessor".
	Access string `yaml:"access,omitempty"`
	Type   string `yaml:"type,omitempty"`

	Value string `yaml:"value,omitempty"`

	Code string `yaml:"code,omitempty"`

	// Line is the source line of the declaration (for error reporting).
	Line int `yaml:"-"`
}

// Parameter is a method parameter. Name carries the Ruby prefix or suffix
// that selects its kind: "a", "b:", "*rest", "**opts", "&blk".
type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`

	// Default is the default value expression; nil when the parameter is
	// required.
	Default *string `yaml:"default,omitempty"`

	Line int `yaml:"-"`
}

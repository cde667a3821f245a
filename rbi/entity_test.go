// SPDX-License-Identifier: MIT

package rbi

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingFormatter marks each line with its indent level and counts calls.
type recordingFormatter struct {
	calls int
}

func (f *recordingFormatter) Indented(level int, line string) string {
	f.calls++
	return fmt.Sprintf("[%d]%s", level, line)
}

func TestGenerateCommentLines(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		level    int
		want     []string
	}{
		{
			name:  "no comments",
			level: 3,
			want:  []string{},
		},
		{
			name:     "single comment",
			comments: []string{"does a thing"},
			level:    1,
			want:     []string{"[1]# does a thing"},
		},
		{
			name:     "order preserved",
			comments: []string{"first", "second", "", "fourth"},
			level:    0,
			want:     []string{"[0]# first", "[0]# second", "[0]# ", "[0]# fourth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstant(nil, "Foo", "1", false)
			for _, text := range tt.comments {
				c.AddComment(text)
			}

			f := &recordingFormatter{}
			got := c.GenerateCommentLines(tt.level, f)
			if got == nil {
				t.Fatal("GenerateCommentLines returned nil, want empty slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GenerateCommentLines mismatch (-want +got):\n%s", diff)
			}
			if f.calls != len(tt.comments) {
				t.Errorf("formatter called %d times, want %d", f.calls, len(tt.comments))
			}
		})
	}
}

func TestGenerateCommentLines_TwoSpaceIndent(t *testing.T) {
	m := NewMethod(nil, "Foo", MethodOptions{})
	m.AddComment("does a thing")

	got := m.GenerateCommentLines(1, Options{TabSize: 2})
	want := []string{"  # does a thing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAddComment_AppendOnly(t *testing.T) {
	ns := NewNamespace(nil, "Foo", ModuleKind, NamespaceOptions{})
	ns.AddComment("one")
	_ = ns.GenerateDeclarationLines(0, DefaultOptions())
	ns.AddComment("two")
	_ = ns.Describe()
	ns.AddComments("three", "four")

	want := []string{"one", "two", "three", "four"}
	if diff := cmp.Diff(want, ns.Comments()); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}
}

func TestComments_ReturnsCopy(t *testing.T) {
	c := NewConstant(nil, "Foo", "1", false)
	c.AddComment("original")

	got := c.Comments()
	got[0] = "changed"

	if c.Comments()[0] != "original" {
		t.Error("mutating the returned slice changed the entity")
	}
}

func TestNewBase_EmptyNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on empty name")
		}
	}()
	NewMethod(nil, "", MethodOptions{})
}

func TestProvenance(t *testing.T) {
	g := NewGenerator(DefaultOptions())

	outside := g.Root().CreateModule("Outside", NamespaceOptions{})

	g.SetCurrentPlugin("models")
	inside := g.Root().CreateModule("Inside", NamespaceOptions{})
	method := inside.CreateMethod("call", MethodOptions{})
	g.SetCurrentPlugin("")

	after := g.Root().CreateConstant("AFTER", "1", false)
	detached := NewInclude(nil, "Comparable")

	tests := []struct {
		name   string
		entity Entity
		want   string
	}{
		{name: "before any plugin", entity: outside, want: ""},
		{name: "namespace during plugin", entity: inside, want: "models"},
		{name: "method during plugin", entity: method, want: "models"},
		{name: "after plugin", entity: after, want: ""},
		{name: "no owner", entity: detached, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.ProducedBy(); got != tt.want {
				t.Errorf("ProducedBy() = %q, want %q", got, tt.want)
			}
		})
	}

	if method.Owner() != g {
		t.Error("Owner() is not the creating generator")
	}
	if detached.Owner() != nil {
		t.Error("Owner() of a detached entity should be nil")
	}
}

// allKinds returns one entity of every kind.
func allKinds() []Entity {
	return []Entity{
		NewNamespace(nil, "Mod", ModuleKind, NamespaceOptions{}),
		NewNamespace(nil, "Klass", ClassKind, NamespaceOptions{Superclass: "Base"}),
		NewMethod(nil, "call", MethodOptions{ReturnType: "String"}),
		NewParameter(nil, "arg", WithType("Integer")),
		NewAttribute(nil, "name", AttrReader, "String", false),
		NewConstant(nil, "VERSION", `"1.0"`, false),
		NewInclude(nil, "Comparable"),
		NewExtend(nil, "T::Sig"),
		NewTypeAlias(nil, "Id", "Integer"),
		NewArbitrary(nil, "attr_reader :x"),
	}
}

func TestIsMergeableWith_EmptyIsTrue(t *testing.T) {
	for _, e := range allKinds() {
		t.Run(e.Describe(), func(t *testing.T) {
			if !e.IsMergeableWith(nil) {
				t.Error("IsMergeableWith(nil) = false, want true")
			}
			if !e.IsMergeableWith([]Entity{}) {
				t.Error("IsMergeableWith([]) = false, want true")
			}
			if err := e.MergeIntoSelf(nil); err != nil {
				t.Errorf("MergeIntoSelf(nil) = %v, want nil", err)
			}
		})
	}
}

func TestIsMergeableWith_DifferentKinds(t *testing.T) {
	kinds := allKinds()
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			if a.IsMergeableWith([]Entity{b}) {
				t.Errorf("%s mergeable with %s", a.Describe(), b.Describe())
			}
		}
	}
}

func TestDescribe_Idempotent(t *testing.T) {
	for _, e := range allKinds() {
		first := e.Describe()
		if second := e.Describe(); first != second {
			t.Errorf("Describe() changed between calls: %q then %q", first, second)
		}
	}
}

func TestDescribe(t *testing.T) {
	g := NewGenerator(DefaultOptions())
	outer := g.Root().CreateModule("Outer", NamespaceOptions{})
	inner := outer.CreateClass("Inner", NamespaceOptions{Superclass: "Base"})
	inner.CreateMethod("x", MethodOptions{})

	tests := []struct {
		entity Entity
		want   string
	}{
		{outer, "Module Outer - 1 children"},
		{inner, "Class Outer::Inner < Base - 1 children"},
		{g.Root(), "Root namespace"},
		{NewMethod(nil, "foo", MethodOptions{
			Parameters: []*Parameter{NewParameter(nil, "a"), NewParameter(nil, "b")},
			ReturnType: "String",
		}), "Method foo - 2 parameters, returns String"},
		{NewMethod(nil, "bar", MethodOptions{ClassMethod: true}), "Method self.bar - 0 parameters, returns void"},
		{NewParameter(nil, "count:", WithType("Integer"), WithDefault("0")), "Parameter count: (Integer) = 0"},
		{NewAttribute(nil, "name", AttrAccessor, "String", false), "Attribute accessor name (String)"},
		{NewConstant(nil, "VERSION", "1", false), "Constant (VERSION = 1)"},
		{NewInclude(nil, "Comparable"), "Include (Comparable)"},
		{NewExtend(nil, "T::Sig"), "Extend (T::Sig)"},
		{NewTypeAlias(nil, "Id", "Integer"), "Type alias (Id = Integer)"},
		{NewArbitrary(nil, "foo\nbar"), "Arbitrary code (foo)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.entity.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package rubyname validates Ruby identifiers used in declaration files.
package rubyname

import (
	"slices"
	"strings"
	"unicode"
)

// operators are the method names Ruby allows that are not identifiers.
var operators = []string{
	"==", "===", "!=", "=~", "!~", "<=>", "<", "<=", ">", ">=",
	"+", "-", "*", "/", "%", "**", "&", "|", "^", "~", "!",
	"<<", ">>", "+@", "-@", "[]", "[]=",
}

// IsConstant reports whether name is a single Ruby constant name, e.g. "Foo".
func IsConstant(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return allIdent(runes[1:])
}

// IsConstantPath reports whether name is a constant or a "::"-separated path
// of constants, optionally anchored at the top level ("::Foo::Bar").
func IsConstantPath(name string) bool {
	name = strings.TrimPrefix(name, "::")
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, "::") {
		if !IsConstant(seg) {
			return false
		}
	}
	return true
}

// IsMethod reports whether name can be used after def. Identifiers may end
// in "?", "!" or "=".
func IsMethod(name string) bool {
	if name == "" {
		return false
	}
	if slices.Contains(operators, name) {
		return true
	}
	if last := name[len(name)-1]; last == '?' || last == '!' || last == '=' {
		name = name[:len(name)-1]
	}
	return IsIdentifier(name) || IsConstant(name)
}

// IsIdentifier reports whether name is a local-variable style identifier,
// e.g. "foo_bar" or "_x".
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if runes[0] != '_' && !unicode.IsLower(runes[0]) {
		return false
	}
	return allIdent(runes[1:])
}

func allIdent(runes []rune) bool {
	for _, r := range runes {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ParameterName strips the splat ("*"), double splat ("**") or block ("&")
// prefix, or the keyword (":") suffix, from a parameter name.
func ParameterName(name string) string {
	for _, prefix := range []string{"**", "*", "&"} {
		if bare, ok := strings.CutPrefix(name, prefix); ok {
			return bare
		}
	}
	return strings.TrimSuffix(name, ":")
}

// IsParameter reports whether name is a named method parameter, e.g. "x",
// "*rest", "**opts", "&block" or "key:". Anonymous splats and blocks are
// rejected since a signature needs a name for them.
func IsParameter(name string) bool {
	return IsIdentifier(ParameterName(name))
}

// TakesDefault reports whether the parameter spelled name may carry a default
// value. Splats and blocks cannot.
func TakesDefault(name string) bool {
	return !strings.HasPrefix(name, "*") && !strings.HasPrefix(name, "&")
}

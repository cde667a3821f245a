// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package declfile

import (
	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/rbigen/internal/model"
	"github.com/albertocavalcante/rbigen/rbi"
)

// Build adds entities for decls under ns, in order. Declarations are assumed
// to have passed [model.File.Validate].
func Build(ns *rbi.Namespace, decls []*model.Declaration) error {
	for _, d := range decls {
		if err := build(ns, d); err != nil {
			return err
		}
	}
	return nil
}

func build(ns *rbi.Namespace, d *model.Declaration) error {
	var e rbi.Entity

	switch d.Kind {
	case model.KindModule, model.KindClass:
		opts := rbi.NamespaceOptions{
			Superclass: d.Superclass,
			Final:      d.Final,
			Sealed:     d.Sealed,
			Abstract:   d.Abstract,
			Interface:  d.Interface,
		}
		var child *rbi.Namespace
		if d.Kind == model.KindModule {
			child = ns.CreateModule(d.Name, opts)
		} else {
			child = ns.CreateClass(d.Name, opts)
		}
		child.AddComments(d.Comments...)
		return Build(child, d.Children)

	case model.KindMethod:
		params := make([]*rbi.Parameter, 0, len(d.Parameters))
		for _, p := range d.Parameters {
			opts := []rbi.ParameterOption{rbi.WithType(p.Type)}
			if p.Default != nil {
				opts = append(opts, rbi.WithDefault(*p.Default))
			}
			params = append(params, ns.CreateParameter(p.Name, opts...))
		}
		e = ns.CreateMethod(d.Name, rbi.MethodOptions{
			Parameters:     params,
			ReturnType:     d.Returns,
			Abstract:       d.Abstract,
			Override:       d.Override,
			Overridable:    d.Overridable,
			Final:          d.Final,
			ClassMethod:    d.Singleton,
			TypeParameters: d.TypeParameters,
		})

	case model.KindAttribute:
		kind, err := rbi.ParseAttributeKind(d.Access)
		if err != nil {
			return err
		}
		e = ns.CreateAttribute(d.Name, kind, d.Type, d.Singleton)

	case model.KindConstant:
		e = ns.CreateConstant(d.Name, d.Value, d.Singleton)

	case model.KindInclude:
		e = ns.CreateInclude(d.Name)

	case model.KindExtend:
		e = ns.CreateExtend(d.Name)

	case model.KindTypeAlias:
		e = ns.CreateTypeAlias(d.Name, d.Type)

	case model.KindArbitrary:
		e = ns.CreateArbitrary(d.Code)

	default:
		return errors.Newf("unsupported declaration kind %q", d.Kind)
	}

	for _, c := range d.Comments {
		e.AddComment(c)
	}
	return nil
}

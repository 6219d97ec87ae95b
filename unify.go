// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rook

import (
	"github.com/coreos/pkg/capnslog"

	"github.com/wdamron/rook/types"
)

// TypeUnifier accumulates substitutions for type-variables. A TypeUnifier belongs to a single
// type-checking session.
type TypeUnifier struct {
	substitutions map[uint64]types.DataType
}

func NewTypeUnifier() *TypeUnifier {
	return &TypeUnifier{substitutions: make(map[uint64]types.DataType)}
}

// Substitutions returns the number of substituted type-variables.
func (u *TypeUnifier) Substitutions() int { return len(u.substitutions) }

// Normalize applies all substitutions to t. Named types without substituted arguments are
// returned unchanged.
func (u *TypeUnifier) Normalize(t types.DataType) types.DataType {
	switch t := t.(type) {
	case types.TypeVariable:
		return u.normalizeVar(t)
	case *types.NamedType:
		if !t.IsGeneric() {
			return t
		}
		var replaced map[uint64]types.DataType
		for _, tv := range types.FindTypeVariables(t) {
			if r := u.normalizeVar(tv); r != types.DataType(tv) {
				if replaced == nil {
					replaced = make(map[uint64]types.DataType)
				}
				replaced[tv.Id()] = r
			}
		}
		if replaced == nil {
			return t
		}
		return types.ReplaceTypeVariables(t, replaced)
	}
	return t
}

func (u *TypeUnifier) normalizeVar(tv types.TypeVariable) types.DataType {
	sub, ok := u.substitutions[tv.Id()]
	if !ok {
		return tv
	}
	normalized := u.Normalize(sub)
	// Path compression:
	if normalized != sub {
		u.substitutions[tv.Id()] = normalized
	}
	return normalized
}

// Unify a and b, substituting type-variables as needed. Unification with an unknown type always
// succeeds. The returned messages describe each mismatch; unification succeeded if there are none.
func (u *TypeUnifier) Unify(a, b types.DataType) []string {
	if types.IsUnknown(a) || types.IsUnknown(b) {
		return nil
	}
	a, b = u.Normalize(a), u.Normalize(b)

	if tv, ok := a.(types.TypeVariable); ok {
		if types.Contains(b, tv) {
			if !types.Equal(a, b) {
				return mismatch(a, b)
			}
			return nil
		}
		if plog.LevelAt(capnslog.TRACE) {
			plog.Tracef("substitute %s := %s", tv, b)
		}
		u.substitutions[tv.Id()] = b
		return nil
	}
	if _, ok := b.(types.TypeVariable); ok {
		return u.Unify(b, a)
	}
	if types.IsUnknown(a) || types.IsUnknown(b) {
		return nil
	}

	na, nb := a.(*types.NamedType), b.(*types.NamedType)
	if na.Name() != nb.Name() {
		return mismatch(a, b)
	}
	argsA, argsB := na.GenericArguments(), nb.GenericArguments()
	if argsA.Len() != argsB.Len() {
		return mismatch(a, b)
	}

	var errs []string
	for i := 0; i < argsA.Len(); i++ {
		x, y := argsA.Get(i), argsB.Get(i)
		if !types.Equal(x, y) {
			errs = append(errs, u.Unify(x, y)...)
		}
	}
	return errs
}

func mismatch(expected, found types.DataType) []string {
	return []string{"Type mismatch: expected " + expected.String() + ", found " + found.String() + "."}
}

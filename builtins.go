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
	"github.com/wdamron/rook/construct"
	"github.com/wdamron/rook/types"
)

// NewGlobalScope creates the root scope of a new session, with bindings for the built-in
// operators and functions. T and S are the first two type-variables of the session.
func NewGlobalScope() *Scope {
	s := NewScope(nil)

	var (
		Int  = types.Integer
		Bool = types.Boolean
	)

	for _, op := range []string{"<", "<=", ">", ">=", "==", "!="} {
		s.Bind(op, construct.TFunc2(Int, Int, Bool))
	}
	for _, op := range []string{"+", "*", "/", "-"} {
		s.Bind(op, construct.TFunc2(Int, Int, Int))
	}
	s.Bind("&&", construct.TFunc2(Bool, Bool, Bool))
	s.Bind("||", construct.TFunc2(Bool, Bool, Bool))
	s.Bind("!", construct.TFunc1(Bool, Bool))

	T, S := s.NewTypeVariable(), s.NewTypeVariable()

	s.Bind("??", construct.TFunc2(construct.TNullable(T), T, T))
	s.Bind("Print", construct.TFunc1(T, types.Void))
	s.Bind("Nullable", construct.TFunc1(T, construct.TNullable(T)))
	s.Bind("First", construct.TFunc1(construct.TEnumerable(T), T))
	s.Bind("Take", construct.TFunc2(construct.TEnumerable(T), Int, construct.TEnumerable(T)))
	s.Bind("Skip", construct.TFunc2(construct.TEnumerable(T), Int, construct.TEnumerable(T)))
	s.Bind("Any", construct.TFunc1(construct.TEnumerable(T), Bool))
	s.Bind("Count", construct.TFunc1(construct.TEnumerable(T), Int))
	s.Bind("Select", construct.TFunc2(construct.TEnumerable(T), construct.TFunc1(T, S), construct.TEnumerable(S)))
	s.Bind("Where", construct.TFunc2(construct.TEnumerable(T), construct.TFunc1(T, Bool), construct.TEnumerable(T)))
	s.Bind("Each", construct.TFunc1(construct.TVector(T), construct.TEnumerable(T)))
	s.Bind("Index", construct.TFunc2(construct.TVector(T), Int, T))
	s.Bind("Slice", construct.TFunc3(construct.TVector(T), Int, Int, construct.TVector(T)))
	s.Bind("Append", construct.TFunc2(construct.TVector(T), T, construct.TVector(T)))
	s.Bind("With", construct.TFunc3(construct.TVector(T), Int, T, construct.TVector(T)))

	return s
}

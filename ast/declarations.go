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

package ast

import (
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

// Program is a compilation unit: a sequence of classes and functions.
type Program struct {
	Position  lexer.Position
	Classes   []*Class
	Functions []*Function
}

func (p *Program) Pos() lexer.Position { return p.Position }

// Class with methods: `class Math { int Zero() 0; }`
type Class struct {
	Position lexer.Position
	Name     string
	Methods  []*Function
}

func (c *Class) Pos() lexer.Position { return c.Position }

// Type returns the type of instances of the class.
func (c *Class) Type() *types.NamedType { return types.NewNamedType(c.Name) }

// Named function: `int Square(int x) x * x`
type Function struct {
	Position   lexer.Position
	ReturnType *TypeName
	Name       string
	Params     []*Parameter
	Body       Expr
}

func (f *Function) Pos() lexer.Position { return f.Position }

// DeclaredType returns the function type built from the declared parameter and return types.
func (f *Function) DeclaredType() *types.NamedType {
	params := make([]types.DataType, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.TypeName.DataType()
	}
	return types.Function(params, f.ReturnType.DataType())
}

// Type name: `int`, `Math`, `int*`, `int[]`, `int?`
type TypeName struct {
	Name string
	Args []*TypeName
}

// Create a type name with generic arguments.
func NewTypeName(name string, args ...*TypeName) *TypeName {
	return &TypeName{Name: name, Args: args}
}

// DataType returns the type denoted by the name.
func (n *TypeName) DataType() types.DataType {
	if n == nil {
		return types.Unknown
	}
	if len(n.Args) == 0 {
		switch n.Name {
		case types.IntegerName:
			return types.Integer
		case types.BooleanName:
			return types.Boolean
		case types.StringName:
			return types.String
		case types.VoidName:
			return types.Void
		}
		return types.NewNamedType(n.Name)
	}
	args := make([]types.DataType, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.DataType()
	}
	return types.NewNamedType(n.Name, args...)
}

func (n *TypeName) String() string {
	if len(n.Args) == 1 {
		switch n.Name {
		case types.EnumerableName:
			return n.Args[0].String() + "*"
		case types.VectorName:
			return n.Args[0].String() + "[]"
		case types.NullableName:
			return n.Args[0].String() + "?"
		}
	}
	if len(n.Args) == 0 {
		return n.Name
	}
	s := n.Name + "<"
	for i, arg := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += arg.String()
	}
	return s + ">"
}

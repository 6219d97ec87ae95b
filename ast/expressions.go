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

// Package ast is the syntax tree of the language. Expressions form a closed set of node types;
// each carries its source position and, once type-checked, its inferred type.
//
// Trees are never modified after construction. Type-checking produces a new tree.
package ast

import (
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

// Node is the base for all syntax tree nodes.
type Node interface {
	Pos() lexer.Position
}

// Expr is the base for all expressions.
type Expr interface {
	Node
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns the inferred type of an expression, or types.Unknown before type-checking.
	Type() types.DataType

	expr()
}

var (
	_ Expr = (*Name)(nil)
	_ Expr = (*Block)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*MethodInvocation)(nil)
	_ Expr = (*New)(nil)
	_ Expr = (*BooleanLiteral)(nil)
	_ Expr = (*IntegerLiteral)(nil)
	_ Expr = (*StringLiteral)(nil)
	_ Expr = (*Null)(nil)
	_ Expr = (*VectorLiteral)(nil)
)

func (*Name) expr()             {}
func (*Block) expr()            {}
func (*Lambda) expr()           {}
func (*If) expr()               {}
func (*Call) expr()             {}
func (*MethodInvocation) expr() {}
func (*New) expr()              {}
func (*BooleanLiteral) expr()   {}
func (*IntegerLiteral) expr()   {}
func (*StringLiteral) expr()    {}
func (*Null) expr()             {}
func (*VectorLiteral) expr()    {}

func known(t types.DataType) types.DataType {
	if t == nil {
		return types.Unknown
	}
	return t
}

// Reference to a named value: `x`
type Name struct {
	Position   lexer.Position
	Identifier string
	inferred   types.DataType
}

func (e *Name) Pos() lexer.Position  { return e.Position }
func (e *Name) ExprName() string     { return "Name" }
func (e *Name) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *Name) WithType(t types.DataType) *Name { c := *e; c.inferred = t; return &c }

// Block with local variables: `{ int x = 1; y = 2; x + y }`
type Block struct {
	Position  lexer.Position
	Variables []*VariableDeclaration
	Body      []Expr
	inferred  types.DataType
}

func (e *Block) Pos() lexer.Position  { return e.Position }
func (e *Block) ExprName() string     { return "Block" }
func (e *Block) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *Block) WithType(t types.DataType) *Block { c := *e; c.inferred = t; return &c }

// Variable declaration within a block: `int x = 1;` or `x = 1;`
type VariableDeclaration struct {
	Position lexer.Position
	// TypeName is nil for implicitly-typed declarations.
	TypeName   *TypeName
	Identifier string
	Value      Expr
	inferred   types.DataType
}

func (d *VariableDeclaration) Pos() lexer.Position    { return d.Position }
func (d *VariableDeclaration) IsImplicitlyTyped() bool { return d.TypeName == nil }

// Type returns the declared or inferred type of the variable.
func (d *VariableDeclaration) Type() types.DataType { return known(d.inferred) }

// WithType returns a copy of d with an assigned type.
func (d *VariableDeclaration) WithType(t types.DataType) *VariableDeclaration {
	c := *d
	c.inferred = t
	return &c
}

// Anonymous function: `fn (x, int y) x + y`
type Lambda struct {
	Position lexer.Position
	Params   []*Parameter
	Body     Expr
	inferred types.DataType
}

func (e *Lambda) Pos() lexer.Position  { return e.Position }
func (e *Lambda) ExprName() string     { return "Lambda" }
func (e *Lambda) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *Lambda) WithType(t types.DataType) *Lambda { c := *e; c.inferred = t; return &c }

// Parameter of a function or lambda: `int x`, or `x` within a lambda
type Parameter struct {
	Position lexer.Position
	// TypeName is nil for implicitly-typed lambda parameters.
	TypeName   *TypeName
	Identifier string
	inferred   types.DataType
}

func (p *Parameter) Pos() lexer.Position     { return p.Position }
func (p *Parameter) IsImplicitlyTyped() bool { return p.TypeName == nil }
func (p *Parameter) Type() types.DataType    { return known(p.inferred) }

// WithType returns a copy of p with an assigned type.
func (p *Parameter) WithType(t types.DataType) *Parameter { c := *p; c.inferred = t; return &c }

// Conditional: `if (x) y else z`
type If struct {
	Position  lexer.Position
	Condition Expr
	WhenTrue  Expr
	WhenFalse Expr
	inferred  types.DataType
}

func (e *If) Pos() lexer.Position  { return e.Position }
func (e *If) ExprName() string     { return "If" }
func (e *If) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *If) WithType(t types.DataType) *If { c := *e; c.inferred = t; return &c }

// Application: `f(x)`, or `x + y` for operators
type Call struct {
	Position   lexer.Position
	Callable   Expr
	Args       []Expr
	IsOperator bool
	inferred   types.DataType
}

func (e *Call) Pos() lexer.Position  { return e.Position }
func (e *Call) ExprName() string     { return "Call" }
func (e *Call) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *Call) WithType(t types.DataType) *Call { c := *e; c.inferred = t; return &c }

// Method invocation: `x.Method(y)`
type MethodInvocation struct {
	Position lexer.Position
	Instance Expr
	Method   *Name
	Args     []Expr
	inferred types.DataType
}

func (e *MethodInvocation) Pos() lexer.Position  { return e.Position }
func (e *MethodInvocation) ExprName() string     { return "MethodInvocation" }
func (e *MethodInvocation) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *MethodInvocation) WithType(t types.DataType) *MethodInvocation {
	c := *e
	c.inferred = t
	return &c
}

// Construction: `new Math()`
type New struct {
	Position lexer.Position
	TypeName *Name
	inferred types.DataType
}

func (e *New) Pos() lexer.Position  { return e.Position }
func (e *New) ExprName() string     { return "New" }
func (e *New) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *New) WithType(t types.DataType) *New { c := *e; c.inferred = t; return &c }

// `true` or `false`
type BooleanLiteral struct {
	Position lexer.Position
	Value    bool
}

func (e *BooleanLiteral) Pos() lexer.Position  { return e.Position }
func (e *BooleanLiteral) ExprName() string     { return "BooleanLiteral" }
func (e *BooleanLiteral) Type() types.DataType { return types.Boolean }

// Integer literal: `123`. The digits are range-checked during type-checking.
type IntegerLiteral struct {
	Position lexer.Position
	Digits   string
	inferred types.DataType
}

func (e *IntegerLiteral) Pos() lexer.Position  { return e.Position }
func (e *IntegerLiteral) ExprName() string     { return "IntegerLiteral" }
func (e *IntegerLiteral) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *IntegerLiteral) WithType(t types.DataType) *IntegerLiteral {
	c := *e
	c.inferred = t
	return &c
}

// String literal: `"abc\n"`
type StringLiteral struct {
	Position lexer.Position
	// Quoted is the literal as written in the source, including quotes and escapes.
	Quoted string
	// Value is the unescaped contents of the literal.
	Value string
}

func (e *StringLiteral) Pos() lexer.Position  { return e.Position }
func (e *StringLiteral) ExprName() string     { return "StringLiteral" }
func (e *StringLiteral) Type() types.DataType { return types.String }

// `null`
type Null struct {
	Position lexer.Position
	inferred types.DataType
}

func (e *Null) Pos() lexer.Position  { return e.Position }
func (e *Null) ExprName() string     { return "Null" }
func (e *Null) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *Null) WithType(t types.DataType) *Null { c := *e; c.inferred = t; return &c }

// Vector literal: `[1, 2, 3]`
type VectorLiteral struct {
	Position lexer.Position
	Items    []Expr
	inferred types.DataType
}

func (e *VectorLiteral) Pos() lexer.Position  { return e.Position }
func (e *VectorLiteral) ExprName() string     { return "VectorLiteral" }
func (e *VectorLiteral) Type() types.DataType { return known(e.inferred) }

// WithType returns a copy of e with an assigned type.
func (e *VectorLiteral) WithType(t types.DataType) *VectorLiteral {
	c := *e
	c.inferred = t
	return &c
}

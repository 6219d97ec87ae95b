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

// Package construct provides terse constructors for types and syntax trees.
package construct

import (
	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/types"
)

// Types

// Generic type-variable: `0`
func TVar(id uint64) types.TypeVariable { return types.NewTypeVariable(id) }

// Non-generic type-variable
func TNonGenericVar(id uint64) types.TypeVariable { return types.NewNonGenericTypeVariable(id) }

// Named type: `int`, `Pair<int, bool>`
func TNamed(name string, args ...types.DataType) *types.NamedType {
	return types.NewNamedType(name, args...)
}

// Function type: `Func<int, int, bool>`
func TFunc(params []types.DataType, ret types.DataType) *types.NamedType {
	return types.Function(params, ret)
}

// Function type: `Func<int>`
func TFunc0(ret types.DataType) *types.NamedType { return types.Function(nil, ret) }

// Function type: `Func<int, int>`
func TFunc1(param, ret types.DataType) *types.NamedType {
	return types.Function([]types.DataType{param}, ret)
}

// Function type: `Func<int, int, int>`
func TFunc2(param1, param2, ret types.DataType) *types.NamedType {
	return types.Function([]types.DataType{param1, param2}, ret)
}

// Function type: `Func<int, int, int, int>`
func TFunc3(param1, param2, param3, ret types.DataType) *types.NamedType {
	return types.Function([]types.DataType{param1, param2, param3}, ret)
}

// `int*`
func TEnumerable(item types.DataType) *types.NamedType { return types.Enumerable(item) }

// `int[]`
func TVector(item types.DataType) *types.NamedType { return types.Vector(item) }

// `int?`
func TNullable(value types.DataType) *types.NamedType { return types.Nullable(value) }

// Type names

// Type name: `int`, `Math`
func TypeName(name string, args ...*ast.TypeName) *ast.TypeName { return ast.NewTypeName(name, args...) }

// Expressions

// Identifier: `x`
func Name(identifier string) *ast.Name { return &ast.Name{Identifier: identifier} }

// `true` or `false`
func Bool(value bool) *ast.BooleanLiteral { return &ast.BooleanLiteral{Value: value} }

// Integer literal: `123`
func Int(digits string) *ast.IntegerLiteral { return &ast.IntegerLiteral{Digits: digits} }

// String literal: `"abc"`
func Str(value string) *ast.StringLiteral {
	return &ast.StringLiteral{Quoted: `"` + value + `"`, Value: value}
}

// `null`
func Null() *ast.Null { return &ast.Null{} }

// Vector literal: `[a, b]`
func Vector(items ...ast.Expr) *ast.VectorLiteral { return &ast.VectorLiteral{Items: items} }

// Application: `f(x, y)`
func Call(callable ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Callable: callable, Args: args}
}

// Binary operator: `x + y`
func Binary(op string, lhs, rhs ast.Expr) *ast.Call {
	return &ast.Call{Callable: Name(op), Args: []ast.Expr{lhs, rhs}, IsOperator: true}
}

// Unary operator: `!x`
func Unary(op string, operand ast.Expr) *ast.Call {
	return &ast.Call{Callable: Name(op), Args: []ast.Expr{operand}, IsOperator: true}
}

// Method invocation: `x.Method(y)`
func Method(instance ast.Expr, method string, args ...ast.Expr) *ast.MethodInvocation {
	return &ast.MethodInvocation{Instance: instance, Method: Name(method), Args: args}
}

// Construction: `new Math()`
func New(typeName string) *ast.New { return &ast.New{TypeName: Name(typeName)} }

// Conditional: `if (c) a else b`
func If(condition, whenTrue, whenFalse ast.Expr) *ast.If {
	return &ast.If{Condition: condition, WhenTrue: whenTrue, WhenFalse: whenFalse}
}

// Anonymous function: `fn (x, int y) body`
func Lambda(params []*ast.Parameter, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: params, Body: body}
}

// Typed parameter: `int x`
func Param(typeName *ast.TypeName, identifier string) *ast.Parameter {
	return &ast.Parameter{TypeName: typeName, Identifier: identifier}
}

// Implicitly-typed lambda parameter: `x`
func ImplicitParam(identifier string) *ast.Parameter {
	return &ast.Parameter{Identifier: identifier}
}

// Block: `{ vars...; body... }`
func Block(vars []*ast.VariableDeclaration, body ...ast.Expr) *ast.Block {
	return &ast.Block{Variables: vars, Body: body}
}

// Typed variable declaration: `int x = value;`
func Var(typeName *ast.TypeName, identifier string, value ast.Expr) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{TypeName: typeName, Identifier: identifier, Value: value}
}

// Implicitly-typed variable declaration: `x = value;`
func ImplicitVar(identifier string, value ast.Expr) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Identifier: identifier, Value: value}
}

// Declarations

// Function: `int Square(int x) body`
func Function(ret *ast.TypeName, name string, params []*ast.Parameter, body ast.Expr) *ast.Function {
	return &ast.Function{ReturnType: ret, Name: name, Params: params, Body: body}
}

// Class: `class Math { methods... }`
func Class(name string, methods ...*ast.Function) *ast.Class {
	return &ast.Class{Name: name, Methods: methods}
}

// Compilation unit
func Program(classes []*ast.Class, functions ...*ast.Function) *ast.Program {
	return &ast.Program{Classes: classes, Functions: functions}
}

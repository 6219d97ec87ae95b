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
	"strconv"

	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

// State of a TypeChecker.
type State int

const (
	Idle State = iota
	Checking
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Checking:
		return "checking"
	case Done:
		return "done"
	}
	return "unknown"
}

// TypeChecker infers and checks the types of a syntax tree, returning a copy of the tree
// annotated with types. Errors are accumulated rather than returned; a tree checked with
// errors should not be used.
//
// A TypeChecker checks a single program and cannot be used concurrently.
type TypeChecker struct {
	state    State
	registry *TypeRegistry
	globals  *Scope
	errors   ErrorList
}

func NewTypeChecker() *TypeChecker {
	return &TypeChecker{registry: NewTypeRegistry()}
}

func (tc *TypeChecker) State() State                { return tc.state }
func (tc *TypeChecker) Registry() *TypeRegistry     { return tc.registry }
func (tc *TypeChecker) Errors() ErrorList           { return tc.errors }
func (tc *TypeChecker) HasErrors() bool             { return len(tc.errors) > 0 }
func (tc *TypeChecker) logError(err *CompilerError) { tc.errors = append(tc.errors, err) }

// Normalize applies the substitutions found while checking the last program.
func (tc *TypeChecker) Normalize(t types.DataType) types.DataType {
	if tc.globals == nil {
		return t
	}
	return tc.globals.Unifier().Normalize(t)
}

// TypeCheck checks a program within a new global scope.
//
// TypeCheck panics if the checker has already been used for a program.
func (tc *TypeChecker) TypeCheck(program *ast.Program) *ast.Program {
	if tc.state != Idle {
		panic("type checker is " + tc.state.String())
	}
	tc.state = Checking
	defer func() { tc.state = Done }()

	scope := tc.GlobalScope(program)
	typed := &ast.Program{Position: program.Position}
	for _, c := range program.Classes {
		typed.Classes = append(typed.Classes, tc.CheckClass(c, scope))
	}
	for _, f := range program.Functions {
		typed.Functions = append(typed.Functions, tc.CheckFunction(f, scope))
	}
	plog.Debugf("checked %d classes and %d functions with %d errors (%d substitutions)",
		len(typed.Classes), len(typed.Functions), len(tc.errors), scope.Unifier().Substitutions())
	return typed
}

// GlobalScope registers the classes of program and creates a global scope binding each class
// name to its constructor and each function name to its declared type.
func (tc *TypeChecker) GlobalScope(program *ast.Program) *Scope {
	for _, c := range program.Classes {
		tc.registry.Register(c)
	}
	scope := NewGlobalScope()
	for _, c := range program.Classes {
		if !scope.TryIncludeUniqueBinding(c.Name, types.Constructor(c.Type())) {
			tc.logError(duplicateIdentifier(c.Position, c.Name))
		}
	}
	for _, f := range program.Functions {
		if !scope.TryIncludeUniqueBinding(f.Name, tc.registry.DeclaredType(f)) {
			tc.logError(duplicateIdentifier(f.Position, f.Name))
		}
	}
	tc.globals = scope
	return scope
}

// CheckClass checks the methods of a class within a scope binding each method's declared type.
func (tc *TypeChecker) CheckClass(class *ast.Class, scope *Scope) *ast.Class {
	local := scope.CreateLocalScope()
	for _, m := range class.Methods {
		if !local.TryIncludeUniqueBinding(m.Name, tc.registry.DeclaredType(m)) {
			tc.logError(duplicateIdentifier(m.Position, m.Name))
		}
	}
	typed := *class
	typed.Methods = make([]*ast.Function, len(class.Methods))
	for i, m := range class.Methods {
		typed.Methods[i] = tc.CheckFunction(m, local)
	}
	return &typed
}

// CheckFunction checks the body of a function against its declared return type.
func (tc *TypeChecker) CheckFunction(fn *ast.Function, scope *Scope) *ast.Function {
	local := scope.CreateLocalScope()
	params := make([]*ast.Parameter, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.WithType(p.TypeName.DataType())
		if !local.TryIncludeUniqueBinding(p.Identifier, params[i].Type()) {
			tc.logError(duplicateIdentifier(p.Position, p.Identifier))
		}
	}
	body := tc.CheckExpression(fn.Body, local)
	tc.unify(local, body.Pos(), fn.ReturnType.DataType(), body.Type())

	typed := *fn
	typed.Params, typed.Body = params, body
	return &typed
}

// CheckExpression checks an expression within scope.
func (tc *TypeChecker) CheckExpression(e ast.Expr, scope *Scope) ast.Expr {
	switch e := e.(type) {
	case *ast.Name:
		t, ok := scope.TryGet(e.Identifier)
		if !ok {
			tc.logError(undefinedIdentifier(e))
			return e
		}
		return e.WithType(t)

	case *ast.Block:
		return tc.checkBlock(e, scope)

	case *ast.Lambda:
		return tc.checkLambda(e, scope)

	case *ast.If:
		cond := tc.CheckExpression(e.Condition, scope)
		whenTrue := tc.CheckExpression(e.WhenTrue, scope)
		whenFalse := tc.CheckExpression(e.WhenFalse, scope)
		tc.unify(scope, cond.Pos(), types.Boolean, cond.Type())
		tc.unify(scope, whenFalse.Pos(), whenTrue.Type(), whenFalse.Type())
		typed := *e
		typed.Condition, typed.WhenTrue, typed.WhenFalse = cond, whenTrue, whenFalse
		return typed.WithType(scope.Unifier().Normalize(whenTrue.Type()))

	case *ast.Call:
		callable := tc.CheckExpression(e.Callable, scope)
		args := tc.checkAll(e.Args, scope)
		typed := *e
		typed.Callable, typed.Args = callable, args
		return typed.WithType(tc.callType(scope, e.Position, callable, args))

	case *ast.MethodInvocation:
		return tc.checkMethodInvocation(e, scope)

	case *ast.New:
		return tc.checkNew(e, scope)

	case *ast.BooleanLiteral, *ast.StringLiteral:
		return e

	case *ast.IntegerLiteral:
		if _, err := strconv.ParseInt(e.Digits, 10, 32); err != nil {
			tc.logError(invalidConstant(e.Position, e.Digits))
			return e
		}
		return e.WithType(types.Integer)

	case *ast.Null:
		return e.WithType(types.Nullable(scope.NewTypeVariable()))

	case *ast.VectorLiteral:
		items := tc.checkAll(e.Items, scope)
		typed := *e
		typed.Items = items
		if len(items) == 0 {
			return typed.WithType(types.Vector(scope.NewTypeVariable()))
		}
		first := items[0].Type()
		for _, item := range items {
			tc.unify(scope, item.Pos(), first, item.Type())
		}
		return typed.WithType(types.Vector(scope.Unifier().Normalize(first)))
	}
	panic("unexpected expression type " + e.ExprName())
}

func (tc *TypeChecker) checkAll(es []ast.Expr, scope *Scope) []ast.Expr {
	typed := make([]ast.Expr, len(es))
	for i, e := range es {
		typed[i] = tc.CheckExpression(e, scope)
	}
	return typed
}

func (tc *TypeChecker) checkBlock(e *ast.Block, scope *Scope) ast.Expr {
	local := scope.CreateLocalScope()
	vars := make([]*ast.VariableDeclaration, len(e.Variables))
	for i, v := range e.Variables {
		value := tc.CheckExpression(v.Value, local)
		t := value.Type()
		if !v.IsImplicitlyTyped() {
			t = v.TypeName.DataType()
		}
		if !local.TryIncludeUniqueBinding(v.Identifier, t) {
			tc.logError(duplicateIdentifier(v.Position, v.Identifier))
		}
		typed := *v
		typed.Value = value
		vars[i] = typed.WithType(t)
		tc.unify(local, value.Pos(), t, value.Type())
	}
	body := tc.checkAll(e.Body, local)
	typed := *e
	typed.Variables, typed.Body = vars, body
	if len(body) == 0 {
		return typed.WithType(types.Void)
	}
	return typed.WithType(body[len(body)-1].Type())
}

func (tc *TypeChecker) checkLambda(e *ast.Lambda, scope *Scope) ast.Expr {
	local := scope.CreateLambdaScope()
	params := make([]*ast.Parameter, len(e.Params))
	for i, p := range e.Params {
		if p.IsImplicitlyTyped() {
			tv := scope.NewNonGenericTypeVariable()
			local.TreatAsNonGeneric(tv)
			params[i] = p.WithType(tv)
		} else {
			params[i] = p.WithType(p.TypeName.DataType())
		}
		if !local.TryIncludeUniqueBinding(p.Identifier, params[i].Type()) {
			tc.logError(duplicateIdentifier(p.Position, p.Identifier))
		}
	}
	body := tc.CheckExpression(e.Body, local)

	paramTypes := make([]types.DataType, len(params))
	for i, p := range params {
		params[i] = p.WithType(scope.Unifier().Normalize(p.Type()))
		paramTypes[i] = params[i].Type()
	}
	typed := *e
	typed.Params, typed.Body = params, body
	return typed.WithType(types.Function(paramTypes, body.Type()))
}

// callType unifies the type of a callee with the types of its arguments, returning the type
// of the call's result.
func (tc *TypeChecker) callType(scope *Scope, pos lexer.Position, callable ast.Expr, args []ast.Expr) types.DataType {
	argTypes := make([]types.DataType, len(args))
	for i, arg := range args {
		argTypes[i] = arg.Type()
	}
	callee := scope.Unifier().Normalize(callable.Type())
	if types.IsUnknown(callee) {
		return types.Unknown
	}
	fn, ok := callee.(*types.NamedType)
	if !ok || !types.IsFunction(fn) {
		tc.logError(objectNotCallable(pos))
		return types.Unknown
	}
	_, ret := types.FunctionParts(fn)
	tc.unify(scope, pos, callable.Type(), types.Function(argTypes, ret))
	return scope.Unifier().Normalize(ret)
}

func (tc *TypeChecker) checkMethodInvocation(e *ast.MethodInvocation, scope *Scope) ast.Expr {
	instance := tc.CheckExpression(e.Instance, scope)
	typed := *e
	typed.Instance = instance

	named, ok := scope.Unifier().Normalize(instance.Type()).(*types.NamedType)
	if !ok {
		typed.Args = tc.checkAll(e.Args, scope)
		tc.logError(ambiguousMethodInvocation(e.Position))
		return &typed
	}

	members, registered := tc.registry.TryGetMembers(named)
	if registered {
		if _, ok := members.Get(e.Method.Identifier); ok {
			method := tc.CheckExpression(e.Method, scope.CreateMemberScope(members)).(*ast.Name)
			args := tc.checkAll(e.Args, scope)
			typed.Method, typed.Args = method, args
			return typed.WithType(tc.callType(scope, e.Position, method, args))
		}
	}
	if registered || scope.Contains(e.Method.Identifier) {
		return tc.extensionCall(e, instance, scope)
	}
	tc.logError(undefinedType(instance.Pos(), named))
	return &typed
}

// An invocation of a method which is not a member of the instance's type is a call of a
// function with the instance as its first argument: `x.F(y)` is `F(x, y)`.
func (tc *TypeChecker) extensionCall(e *ast.MethodInvocation, instance ast.Expr, scope *Scope) ast.Expr {
	callable := tc.CheckExpression(e.Method, scope)
	args := append([]ast.Expr{instance}, tc.checkAll(e.Args, scope)...)
	call := &ast.Call{Position: e.Position, Callable: callable, Args: args}
	return call.WithType(tc.callType(scope, e.Position, callable, args))
}

func (tc *TypeChecker) checkNew(e *ast.New, scope *Scope) ast.Expr {
	name := tc.CheckExpression(e.TypeName, scope).(*ast.Name)
	typed := *e
	typed.TypeName = name
	t := scope.Unifier().Normalize(name.Type())
	if types.IsUnknown(t) {
		return &typed
	}
	if !types.IsConstructor(t) {
		tc.logError(typeNameExpectedForConstruction(e.TypeName))
		return &typed
	}
	return typed.WithType(t.GenericArguments().Last())
}

func (tc *TypeChecker) unify(scope *Scope, pos lexer.Position, a, b types.DataType) {
	if types.IsUnknown(a) || types.IsUnknown(b) {
		return
	}
	for _, msg := range scope.Unifier().Unify(a, b) {
		tc.logError(&CompilerError{pos, msg})
	}
}

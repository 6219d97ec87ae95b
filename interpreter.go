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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/grammar"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

// Interpreter checks a sequence of inputs, each of which is a class, a function, or an
// expression. Classes and functions are kept for later inputs; a new declaration replaces
// any earlier declaration with the same name.
type Interpreter struct {
	grammar   *grammar.Grammar
	classes   map[string]*ast.Class
	functions map[string]*ast.Function
}

// Evaluation is the outcome of interpreting one input.
type Evaluation struct {
	// Class is set when the input declared a class.
	Class *ast.Class
	// Function is set when the input declared a function.
	Function *ast.Function
	// Expr and Type are set when the input was an expression.
	Expr   ast.Expr
	Type   types.DataType
	Errors ErrorList
}

func (ev *Evaluation) HasErrors() bool { return len(ev.Errors) > 0 }

func NewInterpreter(opts ...Option) *Interpreter {
	return &Interpreter{
		grammar:   newGrammar(opts),
		classes:   make(map[string]*ast.Class),
		functions: make(map[string]*ast.Function),
	}
}

// CanParse reports whether code is a class, a function, or an expression.
func (in *Interpreter) CanParse(code string) bool {
	if _, err := in.grammar.ParseClass(code); err == nil {
		return true
	}
	if _, err := in.grammar.ParseFunction(code); err == nil {
		return true
	}
	_, err := in.grammar.ParseExpression(code)
	return err == nil
}

// Incomplete reports whether code fails to parse only because more input is expected.
func (in *Interpreter) Incomplete(code string) bool {
	_, err := in.grammar.ParseExpression(code)
	if err == nil {
		return false
	}
	if err.(*grammar.Error).AtEndOfInput {
		return true
	}
	if _, err := in.grammar.ParseFunction(code); err != nil && err.(*grammar.Error).AtEndOfInput {
		return true
	}
	_, err = in.grammar.ParseClass(code)
	return err != nil && err.(*grammar.Error).AtEndOfInput
}

// Interpret checks code against the declarations of earlier inputs.
func (in *Interpreter) Interpret(code string) *Evaluation {
	e, exprErr := in.grammar.ParseExpression(code)
	if exprErr == nil {
		return in.interpretExpression(e)
	}
	if fn, err := in.grammar.ParseFunction(code); err == nil {
		return in.interpretFunction(fn)
	}
	if class, err := in.grammar.ParseClass(code); err == nil {
		return in.interpretClass(class)
	}
	return &Evaluation{Errors: ErrorList{parseError(exprErr)}}
}

func (in *Interpreter) interpretExpression(e ast.Expr) *Evaluation {
	tc := NewTypeChecker()
	scope := tc.GlobalScope(in.program(nil, nil))
	typed := tc.CheckExpression(e, scope.CreateLocalScope())
	if tc.HasErrors() {
		return &Evaluation{Expr: e, Errors: tc.Errors()}
	}
	return &Evaluation{Expr: typed, Type: scope.Unifier().Normalize(typed.Type())}
}

func (in *Interpreter) interpretFunction(fn *ast.Function) *Evaluation {
	if fn.Name == "Main" {
		return &Evaluation{Errors: ErrorList{reservedMain(fn.Position)}}
	}
	tc := NewTypeChecker()
	typed := tc.TypeCheck(in.program(nil, fn))
	if tc.HasErrors() {
		return &Evaluation{Function: fn, Errors: tc.Errors()}
	}
	delete(in.classes, fn.Name)
	in.functions[fn.Name] = fn
	return &Evaluation{Function: typed.Functions[0]}
}

func (in *Interpreter) interpretClass(class *ast.Class) *Evaluation {
	if class.Name == "Main" {
		return &Evaluation{Errors: ErrorList{reservedMain(class.Position)}}
	}
	tc := NewTypeChecker()
	typed := tc.TypeCheck(in.program(class, nil))
	if tc.HasErrors() {
		return &Evaluation{Class: class, Errors: tc.Errors()}
	}
	delete(in.functions, class.Name)
	in.classes[class.Name] = class
	return &Evaluation{Class: typed.Classes[0]}
}

func reservedMain(pos lexer.Position) *CompilerError {
	return &CompilerError{pos, "The Main function is reserved for expression evaluation, and cannot be explicitly defined."}
}

// program collects the kept declarations, placing class or fn first in place of any kept
// declaration with the same name.
func (in *Interpreter) program(class *ast.Class, fn *ast.Function) *ast.Program {
	replaced := ""
	p := &ast.Program{}
	if class != nil {
		replaced = class.Name
		p.Classes = append(p.Classes, class)
	}
	if fn != nil {
		replaced = fn.Name
		p.Functions = append(p.Functions, fn)
	}
	for _, name := range sortedKeys(in.classes) {
		if name != replaced {
			p.Classes = append(p.Classes, in.classes[name])
		}
	}
	for _, name := range sortedKeys(in.functions) {
		if name != replaced {
			p.Functions = append(p.Functions, in.functions[name])
		}
	}
	return p
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Names returns the identifiers visible to expressions: built-ins and kept declarations.
func (in *Interpreter) Names() []string {
	names := NewGlobalScope().Names()
	names = append(names, maps.Keys(in.classes)...)
	names = append(names, maps.Keys(in.functions)...)
	slices.Sort(names)
	return slices.Compact(names)
}

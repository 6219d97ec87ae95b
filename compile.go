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
	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/grammar"
	"github.com/wdamron/rook/types"
)

// Result is the outcome of compiling a compilation unit.
type Result struct {
	// Program is the type-annotated program, or nil if parsing failed.
	Program *ast.Program
	Errors  ErrorList

	checker *TypeChecker
}

func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// Normalize applies the substitutions found while checking the program to t.
func (r *Result) Normalize(t types.DataType) types.DataType {
	if r.checker == nil {
		return t
	}
	return r.checker.Normalize(t)
}

type options struct {
	maxNesting int
}

// Option configures compilation.
type Option func(*options)

// WithMaxNesting limits how deeply expressions may nest. A limit of 0 disables the check.
func WithMaxNesting(n int) Option { return func(o *options) { o.maxNesting = n } }

func newGrammar(opts []Option) *grammar.Grammar {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return grammar.NewGrammar(grammar.MaxNesting(o.maxNesting))
}

// Compile parses and type-checks a compilation unit. A parse failure produces a single error.
func Compile(source string, opts ...Option) *Result {
	program, err := newGrammar(opts).ParseProgram(source)
	if err != nil {
		return &Result{Errors: ErrorList{parseError(err)}}
	}
	tc := NewTypeChecker()
	typed := tc.TypeCheck(program)
	return &Result{Program: typed, Errors: tc.Errors(), checker: tc}
}

func parseError(err error) *CompilerError {
	perr := err.(*grammar.Error)
	return &CompilerError{Position: perr.Position, Message: perr.Message}
}

// CanParse reports whether source is a class, a function, or an expression.
func CanParse(source string, opts ...Option) bool {
	g := newGrammar(opts)
	if _, err := g.ParseClass(source); err == nil {
		return true
	}
	if _, err := g.ParseFunction(source); err == nil {
		return true
	}
	_, err := g.ParseExpression(source)
	return err == nil
}

// TypeOf parses and type-checks an expression within a new global scope, returning its
// normalized type.
func TypeOf(source string, opts ...Option) (types.DataType, error) {
	e, err := newGrammar(opts).ParseExpression(source)
	if err != nil {
		return nil, ErrorList{parseError(err)}
	}
	scope := NewGlobalScope()
	tc := NewTypeChecker()
	typed := tc.CheckExpression(e, scope)
	if tc.HasErrors() {
		return nil, tc.Errors()
	}
	return scope.Unifier().Normalize(typed.Type()), nil
}

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

// Package parse is a monadic parser-combinator engine over token streams.
//
// A Parser is a function from a token stream to a Reply, which either holds a parsed value and
// the unconsumed remainder of the stream, or the error messages describing a failure at a position.
//
// Alternatives are tried in order, and only alternatives which fail without consuming input are
// backtracked. Once an alternative consumes a token before failing, its failure is final; Attempt
// opts a parser back into backtracking.
package parse

import (
	"github.com/wdamron/rook/lexer"
)

// Reply is the outcome of running a parser.
type Reply[T any] struct {
	value   T
	rest    lexer.TokenStream
	errors  ErrorList
	success bool
}

// Parsed creates a successful reply.
func Parsed[T any](value T, rest lexer.TokenStream) Reply[T] {
	return Reply[T]{value: value, rest: rest, success: true}
}

// Fail creates a failed reply. The position of rest is the position of the failure.
func Fail[T any](rest lexer.TokenStream, errors ErrorList) Reply[T] {
	return Reply[T]{rest: rest, errors: errors}
}

// FailWith creates a failed reply with a single error message.
func FailWith[T any](rest lexer.TokenStream, e ErrorMessage) Reply[T] {
	return Reply[T]{rest: rest, errors: ErrorList{e}}
}

func failAs[U, T any](r Reply[T]) Reply[U] { return Reply[U]{rest: r.rest, errors: r.errors} }

func (r Reply[T]) Success() bool            { return r.success }
func (r Reply[T]) Rest() lexer.TokenStream  { return r.rest }
func (r Reply[T]) Errors() ErrorList        { return r.errors }
func (r Reply[T]) Position() lexer.Position { return r.rest.Position() }

// Value returns the parsed value. Value panics if the reply is a failure.
func (r Reply[T]) Value() T {
	if !r.success {
		panic(r.String())
	}
	return r.value
}

// "(line, column): message" for failures.
func (r Reply[T]) String() string {
	if r.success {
		return r.rest.Position().String() + ": parsed"
	}
	return r.rest.Position().String() + ": " + r.errors.String()
}

func consumed(start, rest lexer.TokenStream) bool { return rest.Offset() != start.Offset() }

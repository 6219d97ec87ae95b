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

package parse

import (
	"github.com/wdamron/rook/lexer"
)

// Parser is a function from a token stream to a Reply.
type Parser[T any] func(lexer.TokenStream) Reply[T]

// Run applies p to a token stream.
func Run[T any](p Parser[T], tokens lexer.TokenStream) Reply[T] { return p(tokens) }

// Unit succeeds with v without consuming input.
func Unit[T any](v T) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] { return Parsed(v, tokens) }
}

// Fails fails with the given expectation without consuming input.
func Fails[T any](expectation string) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] { return FailWith[T](tokens, Expected(expectation)) }
}

// Bind runs p, then runs the parser constructed from p's value against the remainder.
// If p fails, its failure is returned and f is not called.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(tokens lexer.TokenStream) Reply[U] {
		r := p(tokens)
		if !r.success {
			return failAs[U](r)
		}
		return f(r.value)(r.rest)
	}
}

// Map transforms the value of p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(tokens lexer.TokenStream) Reply[U] {
		r := p(tokens)
		if !r.success {
			return failAs[U](r)
		}
		return Parsed(f(r.value), r.rest)
	}
}

// Then runs p then q, keeping the value of q.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Bind(p, func(T) Parser[U] { return q })
}

// Skip runs p then q, keeping the value of p.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Bind(p, func(v T) Parser[T] { return Map(q, func(U) T { return v }) })
}

// Between runs left, p, and right in sequence, keeping the value of p.
func Between[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return Then(left, Skip(p, right))
}

// Choice tries each parser in order. A parser which fails without consuming input is
// backtracked, and its error messages are merged with those of the following alternatives.
// A parser which consumes input before failing ends the choice with its failure.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] {
		var errors ErrorList
		for _, p := range ps {
			r := p(tokens)
			if r.success || consumed(tokens, r.rest) {
				return r
			}
			errors = errors.Merge(r.errors)
		}
		return Fail[T](tokens, errors)
	}
}

// Expect fails with the given expectation, without consuming input, if p succeeds with
// a value rejected by pred.
func Expect[T any](p Parser[T], pred func(T) bool, expectation string) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] {
		r := p(tokens)
		if r.success && !pred(r.value) {
			return FailWith[T](tokens, Expected(expectation))
		}
		return r
	}
}

// OnError replaces the error messages of a failure of p with a single expectation. The
// position of the failure is preserved.
func OnError[T any](p Parser[T], expectation string) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] {
		r := p(tokens)
		if !r.success {
			return FailWith[T](r.rest, Expected(expectation))
		}
		return r
	}
}

// Attempt turns a failure of p after consuming input into a failure without consuming input,
// so that a surrounding choice may try another alternative. The original failure is kept as a
// backtrack message.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] {
		r := p(tokens)
		if !r.success && consumed(tokens, r.rest) {
			return FailWith[T](tokens, Backtrack(r.rest.Position(), r.errors))
		}
		return r
	}
}

// Optional runs p, succeeding with fallback if p fails without consuming input.
func Optional[T any](p Parser[T], fallback T) Parser[T] {
	return func(tokens lexer.TokenStream) Reply[T] {
		r := p(tokens)
		if !r.success && !consumed(tokens, r.rest) {
			return Parsed(fallback, tokens)
		}
		return r
	}
}

// ZeroOrMore applies p repeatedly while it succeeds. Repetition stops after a success which
// consumes no input. A failure after consuming input fails the repetition.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(tokens lexer.TokenStream) Reply[[]T] {
		return repeat(p, tokens, nil)
	}
}

// OneOrMore applies p at least once, then repeatedly while it succeeds.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(tokens lexer.TokenStream) Reply[[]T] {
		r := p(tokens)
		if !r.success {
			return failAs[[]T](r)
		}
		if !consumed(tokens, r.rest) {
			return Parsed([]T{r.value}, r.rest)
		}
		return repeat(p, r.rest, []T{r.value})
	}
}

func repeat[T any](p Parser[T], tokens lexer.TokenStream, items []T) Reply[[]T] {
	for {
		r := p(tokens)
		if !r.success {
			if consumed(tokens, r.rest) {
				return failAs[[]T](r)
			}
			return Parsed(items, tokens)
		}
		items = append(items, r.value)
		if !consumed(tokens, r.rest) {
			return Parsed(items, r.rest)
		}
		tokens = r.rest
	}
}

// ZeroOrMoreSeparated applies p repeatedly, with sep between each application.
func ZeroOrMoreSeparated[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(tokens lexer.TokenStream) Reply[[]T] {
		r := p(tokens)
		if !r.success {
			if consumed(tokens, r.rest) {
				return failAs[[]T](r)
			}
			return Parsed([]T(nil), tokens)
		}
		return repeat(Then(sep, p), r.rest, []T{r.value})
	}
}

// OneOrMoreSeparated applies p at least once, with sep between each application.
func OneOrMoreSeparated[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(tokens lexer.TokenStream) Reply[[]T] {
		r := p(tokens)
		if !r.success {
			return failAs[[]T](r)
		}
		return repeat(Then(sep, p), r.rest, []T{r.value})
	}
}

// Lazy defers construction of a parser until it is first run, which allows recursive grammars.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	var p Parser[T]
	return func(tokens lexer.TokenStream) Reply[T] {
		if p == nil {
			p = f()
		}
		return p(tokens)
	}
}

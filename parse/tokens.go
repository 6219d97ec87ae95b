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

// Token succeeds with the current token if it has the given kind, consuming it.
//
// Token fails without an expectation when the current token is unrecognized input, so
// unrecognized input is reported as a generic parse error at its position.
func Token(kind *lexer.TokenKind) Parser[lexer.Token] {
	return func(tokens lexer.TokenStream) Reply[lexer.Token] {
		tok := tokens.Current()
		if tok.Kind == kind {
			return Parsed(tok, tokens.Advance())
		}
		if tok.Kind == lexer.Unknown {
			return FailWith[lexer.Token](tokens, Unknown())
		}
		return FailWith[lexer.Token](tokens, Expected(kind.Name()))
	}
}

// Literal succeeds with the current token if it has the given kind and literal, consuming it.
func Literal(kind *lexer.TokenKind, literal string) Parser[lexer.Token] {
	return Expect(Token(kind), func(tok lexer.Token) bool { return tok.Literal == literal }, literal)
}

// EndOfInput succeeds at the end of the token stream.
func EndOfInput() Parser[lexer.Token] { return Token(lexer.EndOfInput) }

// Position succeeds with the position of the current token without consuming input.
func Position() Parser[lexer.Position] {
	return func(tokens lexer.TokenStream) Reply[lexer.Position] {
		return Parsed(tokens.Position(), tokens)
	}
}

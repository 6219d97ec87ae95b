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

package lexer

import (
	"regexp"
	"strings"
)

// MatchFunc reports the length in bytes of the match at the start of s, if any.
type MatchFunc func(s string) (n int, ok bool)

// TokenKind is a named matcher for one class of tokens. Kinds are compared by identity.
type TokenKind struct {
	name      string
	match     MatchFunc
	skippable bool
}

// NewTokenKind creates a kind from a custom matcher.
func NewTokenKind(name string, match MatchFunc, skippable bool) *TokenKind {
	return &TokenKind{name: name, match: match, skippable: skippable}
}

// NewPattern creates a kind matching a regular expression at the start of the text.
//
// NewPattern panics if the expression does not compile.
func NewPattern(name, pattern string, skippable bool) *TokenKind {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return NewTokenKind(name, func(s string) (int, bool) {
		loc := re.FindStringIndex(s)
		if loc == nil {
			return 0, false
		}
		return loc[1], true
	}, skippable)
}

// NewKeyword creates a kind matching an exact word, which must not be the prefix
// of a longer identifier.
func NewKeyword(word string) *TokenKind {
	return NewTokenKind(word, func(s string) (int, bool) {
		if !strings.HasPrefix(s, word) {
			return 0, false
		}
		if len(s) > len(word) && isWordByte(s[len(word)]) {
			return 0, false
		}
		return len(word), true
	}, false)
}

// NewOperator creates a kind matching a literal symbol.
func NewOperator(symbol string) *TokenKind {
	return NewTokenKind(symbol, func(s string) (int, bool) {
		if strings.HasPrefix(s, symbol) {
			return len(symbol), true
		}
		return 0, false
	}, false)
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

var (
	// EndOfInput matches the empty string at the end of the text.
	EndOfInput = NewTokenKind("end of input", func(s string) (int, bool) { return 0, len(s) == 0 }, false)
	// Unknown matches all of the remaining text. Lexers fall back to Unknown when no other kind matches.
	Unknown = NewTokenKind("Unknown", func(s string) (int, bool) { return len(s), len(s) > 0 }, false)
)

func (k *TokenKind) Name() string    { return k.name }
func (k *TokenKind) Skippable() bool { return k.skippable }
func (k *TokenKind) String() string  { return k.name }

// TryMatch attempts to match a token at the start of text. Only EndOfInput may match
// the empty string.
func (k *TokenKind) TryMatch(text Text) (Token, bool) {
	n, ok := k.match(text.Remaining())
	if !ok || (n == 0 && k != EndOfInput) {
		return Token{}, false
	}
	return Token{Kind: k, Literal: text.Peek(n), Position: text.Position()}, true
}

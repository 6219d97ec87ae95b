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

// Token is a classified, positioned slice of source text.
type Token struct {
	Kind     *TokenKind
	Literal  string
	Position Position
}

func (t Token) String() string {
	if t.Kind == EndOfInput {
		return t.Position.String() + " " + t.Kind.name
	}
	return t.Position.String() + " " + t.Kind.name + " " + t.Literal
}

// Lexer is an immutable lexing state. The current token and the following state are
// computed on first use and cached. A Lexer must not be shared across goroutines
// until its tokens have been computed.
type Lexer struct {
	text  Text
	kinds []*TokenKind

	current *Token
	next    *Lexer
}

// New creates a lexer over input. Kinds are tried in the given order, followed by
// EndOfInput and Unknown.
func New(input string, kinds ...*TokenKind) *Lexer {
	all := make([]*TokenKind, 0, len(kinds)+2)
	all = append(all, kinds...)
	all = append(all, EndOfInput, Unknown)
	return &Lexer{text: NewText(input), kinds: all}
}

func (lx *Lexer) Position() Position { return lx.text.Position() }

// CurrentToken returns the token at the current position. Every state has a current token.
func (lx *Lexer) CurrentToken() Token {
	if lx.current != nil {
		return *lx.current
	}
	for _, kind := range lx.kinds {
		if tok, ok := kind.TryMatch(lx.text); ok {
			lx.current = &tok
			return tok
		}
	}
	panic("no token kind matched at " + lx.text.Position().String())
}

// Advance returns the state following the current token. Advancing at the end of the
// input returns the same state.
func (lx *Lexer) Advance() *Lexer {
	if lx.next != nil {
		return lx.next
	}
	tok := lx.CurrentToken()
	if tok.Kind == EndOfInput {
		lx.next = lx
		return lx
	}
	lx.next = &Lexer{text: lx.text.Advance(len(tok.Literal)), kinds: lx.kinds}
	return lx.next
}

// Range calls f with each non-skippable token, ending with the EndOfInput token.
// If f returns false, iteration will be stopped.
func (lx *Lexer) Range(f func(Token) bool) {
	for state := lx; ; state = state.Advance() {
		tok := state.CurrentToken()
		if tok.Kind.skippable {
			continue
		}
		if !f(tok) || tok.Kind == EndOfInput {
			return
		}
	}
}

// Tokens returns the non-skippable tokens from the current state, ending with exactly
// one EndOfInput token.
func (lx *Lexer) Tokens() []Token {
	var tokens []Token
	lx.Range(func(tok Token) bool {
		tokens = append(tokens, tok)
		return true
	})
	return tokens
}

// Stream returns a token stream over the non-skippable tokens from the current state.
func (lx *Lexer) Stream() TokenStream { return NewTokenStream(lx.Tokens()) }

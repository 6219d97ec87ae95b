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

// TokenStream is an immutable cursor over a sequence of tokens ending with EndOfInput.
type TokenStream struct {
	tokens []Token
	index  int
}

// NewTokenStream creates a stream over tokens. An EndOfInput token is appended if the
// sequence does not already end with one.
func NewTokenStream(tokens []Token) TokenStream {
	n := len(tokens)
	if n == 0 || tokens[n-1].Kind != EndOfInput {
		pos := StartPosition
		if n > 0 {
			pos = endOf(tokens[n-1])
		}
		tokens = append(tokens[:n:n], Token{Kind: EndOfInput, Position: pos})
	}
	return TokenStream{tokens: tokens}
}

func (ts TokenStream) Current() Token     { return ts.tokens[ts.index] }
func (ts TokenStream) Position() Position { return ts.tokens[ts.index].Position }

// Offset is the number of tokens consumed from the start of the stream.
func (ts TokenStream) Offset() int { return ts.index }

func (ts TokenStream) AtEnd() bool { return ts.tokens[ts.index].Kind == EndOfInput }

// Advance returns the stream following the current token. Advancing at the end of the
// stream returns the same stream.
func (ts TokenStream) Advance() TokenStream {
	if ts.AtEnd() {
		return ts
	}
	return TokenStream{tokens: ts.tokens, index: ts.index + 1}
}

// Remaining returns the literals of the unconsumed tokens, excluding EndOfInput.
func (ts TokenStream) Remaining() []string {
	literals := make([]string, 0, len(ts.tokens)-ts.index-1)
	for _, tok := range ts.tokens[ts.index : len(ts.tokens)-1] {
		literals = append(literals, tok.Literal)
	}
	return literals
}

func endOf(tok Token) Position {
	pos := tok.Position
	for _, r := range tok.Literal {
		if r == '\n' {
			pos.Line, pos.Column = pos.Line+1, 1
		} else {
			pos.Column++
		}
	}
	return pos
}

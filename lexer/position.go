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

// Package lexer splits source text into positioned tokens using an ordered list of
// token kinds. The first kind which matches at the current position wins.
package lexer

import (
	"strconv"
	"unicode/utf8"
)

// Position is a line and column within source text, both starting at 1.
type Position struct {
	Line   int
	Column int
}

// StartPosition is the position of the first character of any text.
var StartPosition = Position{Line: 1, Column: 1}

// "(line, column)"
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Line) + ", " + strconv.Itoa(p.Column) + ")"
}

// Text is an immutable cursor over the remaining source text.
type Text struct {
	input    string
	index    int
	position Position
}

// NewText creates a cursor at the start of input.
func NewText(input string) Text {
	return Text{input: input, position: StartPosition}
}

// Advance returns a cursor n bytes further into the text. Line and column are
// updated by scanning the consumed characters for newlines.
func (t Text) Advance(n int) Text {
	if n <= 0 {
		return t
	}
	end := t.index + n
	if end > len(t.input) {
		end = len(t.input)
	}
	line, column := t.position.Line, t.position.Column
	for _, r := range t.input[t.index:end] {
		if r == '\n' {
			line, column = line+1, 1
		} else {
			column++
		}
	}
	return Text{input: t.input, index: end, position: Position{Line: line, Column: column}}
}

// Peek returns up to n bytes of the remaining text without advancing.
func (t Text) Peek(n int) string {
	end := t.index + n
	if end > len(t.input) {
		end = len(t.input)
	}
	return t.input[t.index:end]
}

func (t Text) Remaining() string   { return t.input[t.index:] }
func (t Text) EndOfInput() bool    { return t.index >= len(t.input) }
func (t Text) Position() Position  { return t.position }
func (t Text) Offset() int         { return t.index }
func (t Text) String() string      { return t.Remaining() }
func (t Text) RemainingRunes() int { return utf8.RuneCountInString(t.Remaining()) }

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

package grammar

import (
	"github.com/wdamron/rook/lexer"
)

var (
	Whitespace = lexer.NewPattern("whitespace", `[ \t\n]+`, true)
	Comment    = lexer.NewPattern("comment", `//[^\n]*`, true)

	// Statement-variant whitespace: line breaks are significant.
	IntralineWhitespace = lexer.NewPattern("intraline whitespace", `[ \t]+`, true)
	// A line break or semicolon, with surrounding blank space collapsed into one token.
	EndOfLine = lexer.NewPattern("end of line", `[ \t]*(?:\r\n|\n|;)[ \t\r\n]*`, false)
)

// Keywords
var (
	Int    = lexer.NewKeyword("int")
	Bool   = lexer.NewKeyword("bool")
	String = lexer.NewKeyword("string")
	Void   = lexer.NewKeyword("void")
	Null   = lexer.NewKeyword("null")
	If     = lexer.NewKeyword("if")
	Else   = lexer.NewKeyword("else")
	Fn     = lexer.NewKeyword("fn")
	True   = lexer.NewKeyword("true")
	False  = lexer.NewKeyword("false")
	Class  = lexer.NewKeyword("class")
	New    = lexer.NewKeyword("new")
	Return = lexer.NewKeyword("return")
)

var (
	// `0` not followed by another digit, or a nonzero digit followed by any digits.
	Integer = lexer.NewTokenKind("integer", matchInteger, false)
	// Double-quoted; contents are characters other than quote or backslash, or one of the
	// escapes \" \\ \n \r \t \uXXXX.
	StringLiteral = lexer.NewPattern("string literal", `"(?:[^"\\]|\\["\\nrt]|\\u[0-9a-fA-F]{4})*"`, false)
	Identifier    = lexer.NewPattern("identifier", `[_a-zA-Z][_a-zA-Z0-9]*`, false)
)

func matchInteger(s string) (int, bool) {
	if len(s) == 0 || !isDigit(s[0]) {
		return 0, false
	}
	if s[0] == '0' {
		if len(s) > 1 && isDigit(s[1]) {
			return 0, false
		}
		return 1, true
	}
	n := 1
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n, true
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// Operators
var (
	LeftParen          = lexer.NewOperator("(")
	RightParen         = lexer.NewOperator(")")
	Multiply           = lexer.NewOperator("*")
	Divide             = lexer.NewOperator("/")
	Add                = lexer.NewOperator("+")
	Subtract           = lexer.NewOperator("-")
	LessThanOrEqual    = lexer.NewOperator("<=")
	LessThan           = lexer.NewOperator("<")
	GreaterThanOrEqual = lexer.NewOperator(">=")
	GreaterThan        = lexer.NewOperator(">")
	Equal              = lexer.NewOperator("==")
	NotEqual           = lexer.NewOperator("!=")
	Or                 = lexer.NewOperator("||")
	And                = lexer.NewOperator("&&")
	Not                = lexer.NewOperator("!")
	Assignment         = lexer.NewOperator("=")
	Comma              = lexer.NewOperator(",")
	LeftBrace          = lexer.NewOperator("{")
	RightBrace         = lexer.NewOperator("}")
	Brackets           = lexer.NewOperator("[]")
	LeftSquare         = lexer.NewOperator("[")
	RightSquare        = lexer.NewOperator("]")
	Colon              = lexer.NewOperator(":")
	NullCoalesce       = lexer.NewOperator("??")
	Question           = lexer.NewOperator("?")
	MemberAccess       = lexer.NewOperator(".")
	Semicolon          = lexer.NewOperator(";")
)

var keywords = []*lexer.TokenKind{Int, Bool, String, Void, Null, If, Else, Fn, True, False, Class, New}

// Multi-character operators precede their single-character prefixes.
var operators = []*lexer.TokenKind{
	LeftParen, RightParen,
	Multiply, Divide,
	Add, Subtract,
	LessThanOrEqual, LessThan, GreaterThanOrEqual, GreaterThan,
	Equal, NotEqual,
	Or, And, Not,
	Assignment, Comma,
	LeftBrace, RightBrace,
	Brackets, LeftSquare, RightSquare, Colon,
	NullCoalesce, Question, MemberAccess,
}

// Kinds returns the token kinds of the expression language, in priority order.
func Kinds() []*lexer.TokenKind {
	kinds := []*lexer.TokenKind{Whitespace, Comment}
	kinds = append(kinds, keywords...)
	kinds = append(kinds, Integer, StringLiteral, Identifier)
	kinds = append(kinds, operators...)
	return append(kinds, Semicolon)
}

// StatementKinds returns the token kinds of the statement language, in which line breaks
// and semicolons end statements.
func StatementKinds() []*lexer.TokenKind {
	kinds := []*lexer.TokenKind{EndOfLine, IntralineWhitespace, Comment}
	kinds = append(kinds, keywords...)
	kinds = append(kinds, Return, Integer, StringLiteral, Identifier)
	return append(kinds, operators...)
}

// Lex creates a lexer for the expression language.
func Lex(source string) *lexer.Lexer { return lexer.New(source, Kinds()...) }

// LexStatements creates a lexer for the statement language.
func LexStatements(source string) *lexer.Lexer { return lexer.New(source, StatementKinds()...) }

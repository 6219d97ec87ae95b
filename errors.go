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
	"strings"

	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/types"
)

// CompilerError is a parse or type error at a position within the source.
type CompilerError struct {
	Position lexer.Position
	Message  string
}

// "(line, column): message"
func (e *CompilerError) Error() string { return e.Position.String() + ": " + e.Message }

// ErrorList is a sequence of compiler errors, in the order they were found.
type ErrorList []*CompilerError

func (l ErrorList) Error() string {
	var sb strings.Builder
	for i, err := range l {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func undefinedIdentifier(name *ast.Name) *CompilerError {
	return &CompilerError{name.Position, "Reference to undefined identifier: " + name.Identifier}
}

func duplicateIdentifier(pos lexer.Position, identifier string) *CompilerError {
	return &CompilerError{pos, "Duplicate identifier: " + identifier}
}

func objectNotCallable(pos lexer.Position) *CompilerError {
	return &CompilerError{pos, "Attempted to call a noncallable object."}
}

func ambiguousMethodInvocation(pos lexer.Position) *CompilerError {
	return &CompilerError{pos, "Cannot invoke method against instance of unknown type."}
}

func undefinedType(pos lexer.Position, t types.DataType) *CompilerError {
	return &CompilerError{pos, "Type is undefined: " + t.String()}
}

func typeNameExpectedForConstruction(name *ast.Name) *CompilerError {
	return &CompilerError{name.Position, "Type name expected for construction: " + name.Identifier}
}

func invalidConstant(pos lexer.Position, digits string) *CompilerError {
	return &CompilerError{pos, "Invalid constant: " + digits}
}

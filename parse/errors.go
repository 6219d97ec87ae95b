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
	"strings"

	"github.com/wdamron/rook/lexer"
)

// ErrorMessage describes why a parser failed.
type ErrorMessage interface {
	String() string
	errorMessage()
}

var (
	_ ErrorMessage = UnknownError{}
	_ ErrorMessage = ExpectedError{}
	_ ErrorMessage = BacktrackError{}
)

func (UnknownError) errorMessage()   {}
func (ExpectedError) errorMessage()  {}
func (BacktrackError) errorMessage() {}

// Failure without a specific expectation: "Parse error."
type UnknownError struct{}

// Failure to meet an expectation at the current position: "identifier expected"
type ExpectedError struct {
	Expectation string
}

// Failure which was backtracked after consuming input. Position is where the original failure occurred.
type BacktrackError struct {
	Position lexer.Position
	Errors   ErrorList
}

func Unknown() ErrorMessage                    { return UnknownError{} }
func Expected(expectation string) ErrorMessage { return ExpectedError{Expectation: expectation} }
func Backtrack(position lexer.Position, errors ErrorList) ErrorMessage {
	return BacktrackError{Position: position, Errors: errors}
}

func (UnknownError) String() string    { return "Parse error." }
func (e ExpectedError) String() string { return e.Expectation + " expected" }
func (e BacktrackError) String() string {
	return e.Position.String() + ": " + e.Errors.String()
}

// ErrorList is an immutable, set-like list of error messages for a single failure position.
type ErrorList []ErrorMessage

// Merge returns the messages of l followed by the messages of other which are not already present.
func (l ErrorList) Merge(other ErrorList) ErrorList {
	if len(other) == 0 {
		return l
	}
	if len(l) == 0 {
		return other
	}
	merged := make(ErrorList, len(l), len(l)+len(other))
	copy(merged, l)
	for _, e := range other {
		if !merged.contains(e) {
			merged = append(merged, e)
		}
	}
	return merged
}

func (l ErrorList) contains(e ErrorMessage) bool {
	for _, x := range l {
		if sameMessage(x, e) {
			return true
		}
	}
	return false
}

func sameMessage(a, b ErrorMessage) bool {
	switch a := a.(type) {
	case UnknownError:
		_, ok := b.(UnknownError)
		return ok
	case ExpectedError:
		b, ok := b.(ExpectedError)
		return ok && a.Expectation == b.Expectation
	case BacktrackError:
		b, ok := b.(BacktrackError)
		return ok && a.Position == b.Position && a.Errors.String() == b.Errors.String()
	}
	return false
}

// String renders distinct expectations, in the order they were recorded, as "A or B expected",
// followed by any backtracked failures in brackets. A list without expectations or backtracked
// failures renders as "Parse error.".
func (l ErrorList) String() string {
	var expectations []string
	var backtracks []string
	for _, e := range l {
		switch e := e.(type) {
		case ExpectedError:
			expectations = append(expectations, e.Expectation)
		case BacktrackError:
			backtracks = append(backtracks, "["+e.String()+"]")
		}
	}
	if len(expectations) == 0 && len(backtracks) == 0 {
		return UnknownError{}.String()
	}
	var sb strings.Builder
	if len(expectations) > 0 {
		sb.WriteString(strings.Join(expectations, " or "))
		sb.WriteString(" expected")
	}
	for _, b := range backtracks {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b)
	}
	return sb.String()
}

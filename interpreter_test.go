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
	"testing"

	"github.com/wdamron/rook/types"
)

func TestInterpreter(t *testing.T) {
	in := NewInterpreter()

	ev := in.Interpret("int Square(int x) x * x")
	if ev.HasErrors() || ev.Function == nil || ev.Function.Name != "Square" {
		t.Fatalf("function: %v", ev.Errors)
	}
	ev = in.Interpret("Square(3)")
	if ev.HasErrors() || types.TypeString(ev.Type) != "int" {
		t.Fatalf("expression: %s %v", ev.Type, ev.Errors)
	}

	ev = in.Interpret("class Math { int Zero() 0 }")
	if ev.HasErrors() || ev.Class == nil {
		t.Fatalf("class: %v", ev.Errors)
	}
	ev = in.Interpret("new Math().Zero() + Square(2)")
	if ev.HasErrors() || types.TypeString(ev.Type) != "int" {
		t.Fatalf("expression: %s %v", ev.Type, ev.Errors)
	}

	// Redeclaration replaces the earlier function:
	ev = in.Interpret("bool Square(int x) x > 0")
	if ev.HasErrors() {
		t.Fatalf("function: %v", ev.Errors)
	}
	ev = in.Interpret("Square(3)")
	if types.TypeString(ev.Type) != "bool" {
		t.Fatalf("expression: %s %v", ev.Type, ev.Errors)
	}

	ev = in.Interpret("int Main() 0")
	if len(ev.Errors) != 1 || ev.Errors[0].Error() != "(1, 1): The Main function is reserved for expression evaluation, and cannot be explicitly defined." {
		t.Fatalf("errors: %v", ev.Errors)
	}
	ev = in.Interpret("int Cube(int x) y")
	if len(ev.Errors) != 1 || ev.Errors[0].Error() != "(1, 17): Reference to undefined identifier: y" {
		t.Fatalf("errors: %v", ev.Errors)
	}
	ev = in.Interpret("Cube(2)")
	if len(ev.Errors) != 1 || ev.Errors[0].Error() != "(1, 1): Reference to undefined identifier: Cube" {
		t.Fatalf("errors: %v", ev.Errors)
	}
	ev = in.Interpret("1 )")
	if len(ev.Errors) != 1 || ev.Errors[0].Error() != "(1, 3): end of input expected" {
		t.Fatalf("errors: %v", ev.Errors)
	}

	names := in.Names()
	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	if !found["Square"] || !found["Math"] || !found["Print"] || found["Cube"] {
		t.Fatalf("names: %v", names)
	}
}

func TestInterpreterIncompleteInput(t *testing.T) {
	in := NewInterpreter()
	for _, code := range []string{"1 +", "f(1,", "class Math {", "int Square(int x)"} {
		if !in.Incomplete(code) {
			t.Fatalf("expected %q to be incomplete", code)
		}
	}
	for _, code := range []string{"1 )", "1 + 2", "$"} {
		if in.Incomplete(code) {
			t.Fatalf("unexpected incomplete input %q", code)
		}
	}
	if !in.CanParse("class Math { int Zero() 0 }") || in.CanParse("1 +") {
		t.Fatalf("unexpected CanParse")
	}
}

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

package main

import (
	"reflect"
	"testing"
)

func TestCompleteWord(t *testing.T) {
	names := []string{"Each", "Index", "Print", "Slice", "Square"}

	head, completions, tail := completeWord(names, "1 + Sq(2)", 6)
	if head != "1 + " || tail != "(2)" || !reflect.DeepEqual(completions, []string{"Square"}) {
		t.Fatalf("completion: %q %v %q", head, completions, tail)
	}

	_, completions, _ = completeWord(names, "S", 1)
	if !reflect.DeepEqual(completions, []string{"Slice", "Square"}) {
		t.Fatalf("completions: %v", completions)
	}

	if _, completions, _ = completeWord(names, "1 + ", 4); completions != nil {
		t.Fatalf("completions: %v", completions)
	}
}

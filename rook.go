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

// Package rook type-checks programs in a small, statically-typed expression language.
//
// Types are inferred with Hindley-Milner style unification. Functions and class methods
// declare their parameter and return types; lambda parameters, block variables, and the
// results of calls are inferred:
//
//  class Math {
//      int Square(int x) x * x;
//  }
//  int Main() {
//      m = new Math();
//      square = fn (x) m.Square(x);
//      square(3)
//  }
//
// Identifiers bound to generic types are instantiated with fresh type-variables at each use,
// except for variables which are pinned within the lambda that introduced them.
//
// Compile parses and type-checks a compilation unit:
//
//  result := rook.Compile(source)
//  for _, err := range result.Errors {
//      fmt.Println(err) // (line, column): message
//  }
package rook

import (
	"github.com/coreos/pkg/capnslog"
)

var plog = capnslog.NewPackageLogger("github.com/wdamron/rook", "rook")

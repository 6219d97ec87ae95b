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

// Package typeutil holds the state shared by every scope within one type-checking session.
package typeutil

import (
	"github.com/wdamron/rook/types"
)

// CommonContext is owned by the root scope of a session and shared by all of its descendants.
type CommonContext struct {
	VarTracker VarTracker
	InstLookup map[uint64]types.DataType // instantiation lookup for generic type-variables
}

func (ctx *CommonContext) Init() {
	ctx.InstLookup = make(map[uint64]types.DataType, 16)
}

func (ctx *CommonContext) Reset() {
	ctx.VarTracker.Reset()
	ctx.ClearInstantiationLookup()
}

func (ctx *CommonContext) ClearInstantiationLookup() {
	for k := range ctx.InstLookup {
		delete(ctx.InstLookup, k)
	}
}

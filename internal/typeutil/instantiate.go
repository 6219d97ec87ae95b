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

package typeutil

import (
	"github.com/wdamron/rook/types"
)

// Instantiate replaces each distinct generic type-variable within t with a fresh generic
// type-variable. Occurrences of the same variable are replaced by the same fresh variable.
// Variables for which isGeneric returns false are kept.
func (ctx *CommonContext) Instantiate(t types.DataType, isGeneric func(types.TypeVariable) bool) types.DataType {
	// Concrete types can be shared:
	if tv, ok := t.(types.TypeVariable); !ok && !t.IsGeneric() {
		return t
	} else if ok && !(tv.IsGeneric() && isGeneric(tv)) {
		return t
	}
	fresh := false
	for _, tv := range types.FindTypeVariables(t) {
		if !tv.IsGeneric() || !isGeneric(tv) {
			continue
		}
		if _, ok := ctx.InstLookup[tv.Id()]; !ok {
			ctx.InstLookup[tv.Id()] = ctx.VarTracker.New(true)
			fresh = true
		}
	}
	if fresh {
		t = types.ReplaceTypeVariables(t, ctx.InstLookup)
	}
	ctx.ClearInstantiationLookup()
	return t
}

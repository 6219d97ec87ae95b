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

// VarTracker allocates type-variables with increasing ids and counts allocations.
type VarTracker struct {
	NextId uint64
	count  int
}

// Reset clears the allocation count. Ids are never reused.
func (vt *VarTracker) Reset() { vt.count = 0 }

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// New allocates a type-variable.
func (vt *VarTracker) New(generic bool) types.TypeVariable {
	id := vt.NextId
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	if generic {
		return types.NewTypeVariable(id)
	}
	return types.NewNonGenericTypeVariable(id)
}

// NewList allocates count type-variables.
func (vt *VarTracker) NewList(generic bool, count int) []types.TypeVariable {
	vs := make([]types.TypeVariable, count)
	for i := range vs {
		vs[i] = vt.New(generic)
	}
	return vs
}

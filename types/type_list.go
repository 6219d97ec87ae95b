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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types.
type TypeList struct {
	l *immutable.List
}

// Create a TypeList containing the given types.
func NewTypeList(ts ...DataType) TypeList {
	if len(ts) == 0 {
		return EmptyTypeList
	}
	b := NewTypeListBuilder()
	for _, t := range ts {
		b.Append(t)
	}
	return b.Build()
}

// Create a TypeList with a single entry.
func SingletonTypeList(t DataType) TypeList { return TypeList{emptyList.Append(t)} }

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) DataType            { return l.l.Get(i).(DataType) }
func (l TypeList) Slice(start, end int) TypeList { return TypeList{l.l.Slice(start, end)} }

// Last returns the final type in the list, or nil if the list is empty.
func (l TypeList) Last() DataType {
	n := l.Len()
	if n == 0 {
		return nil
	}
	return l.Get(n - 1)
}

// Types returns the types in the list as a slice.
func (l TypeList) Types() []DataType {
	ts := make([]DataType, 0, l.Len())
	l.Range(func(_ int, t DataType) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, DataType) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(DataType)) {
			return
		}
	}
}

func (l TypeList) Builder() TypeListBuilder {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return TypeListBuilder{immutable.NewListBuilder(imm)}
}

type TypeListBuilder struct {
	b *immutable.ListBuilder
}

func NewTypeListBuilder() TypeListBuilder {
	return TypeListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b TypeListBuilder) Len() int              { return b.b.Len() }
func (b TypeListBuilder) Append(t DataType)     { b.b.Append(t) }
func (b TypeListBuilder) Set(i int, t DataType) { b.b.Set(i, t) }
func (b TypeListBuilder) Build() TypeList       { return TypeList{b.b.List()} }

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
	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/types"
)

// TypeRegistry records the members of declared classes.
type TypeRegistry struct {
	members map[string]Bindings
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{members: make(map[string]Bindings)}
}

// Register the methods of a class. A class registered twice keeps the methods of the
// first registration.
func (r *TypeRegistry) Register(class *ast.Class) {
	name := class.Type().Name()
	if _, ok := r.members[name]; ok {
		return
	}
	members := NewBindings()
	for _, m := range class.Methods {
		if _, ok := members.Get(m.Name); !ok {
			members = members.Set(m.Name, r.DeclaredType(m))
		}
	}
	r.members[name] = members
}

// TryGetMembers returns the members of a registered, non-generic type.
func (r *TypeRegistry) TryGetMembers(t *types.NamedType) (Bindings, bool) {
	if t.IsGeneric() {
		return Bindings{}, false
	}
	members, ok := r.members[t.Name()]
	return members, ok
}

// DeclaredType returns the function type declared by fn.
func (r *TypeRegistry) DeclaredType(fn *ast.Function) types.DataType { return fn.DeclaredType() }

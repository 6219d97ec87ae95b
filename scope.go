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
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"

	"github.com/wdamron/rook/internal/typeutil"
	"github.com/wdamron/rook/types"
)

var emptyBindings = immutable.NewSortedMap(nil)

// Bindings is a persistent map from identifiers to types.
type Bindings struct {
	m *immutable.SortedMap
}

// NewBindings creates an empty map.
func NewBindings() Bindings { return Bindings{emptyBindings} }

func (b Bindings) Len() int {
	if b.m == nil {
		return 0
	}
	return b.m.Len()
}

func (b Bindings) Get(name string) (types.DataType, bool) {
	if b.m == nil {
		return nil, false
	}
	t, ok := b.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.DataType), true
}

// Set returns a copy of the map with name bound to t.
func (b Bindings) Set(name string, t types.DataType) Bindings {
	if b.m == nil {
		b.m = emptyBindings
	}
	return Bindings{b.m.Set(name, t)}
}

// Range calls f for each binding, in order of name, until f returns false.
func (b Bindings) Range(f func(string, types.DataType) bool) {
	if b.m == nil {
		return
	}
	iter := b.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.DataType)) {
			return
		}
	}
}

// shared by every scope within one session
type session struct {
	unifier *TypeUnifier
	common  typeutil.CommonContext
}

// Scope is a frame of bindings from identifiers to types, chained to an enclosing scope.
//
// The root scope of a session owns the type-variable id generator and the TypeUnifier;
// descendant scopes delegate to the root. A scope cannot be used concurrently.
type Scope struct {
	parent *Scope
	locals Bindings
	// type-variables which must not be generalized within this frame
	pinned  []types.TypeVariable
	session *session
}

// NewScope creates a scope. A nil parent creates the root scope of a new session.
func NewScope(parent *Scope) *Scope {
	if parent != nil {
		return &Scope{parent: parent, locals: NewBindings(), session: parent.session}
	}
	s := &session{unifier: NewTypeUnifier()}
	s.common.Init()
	return &Scope{locals: NewBindings(), session: s}
}

// CreateLocalScope creates a child scope for a function body, class, or block.
func (s *Scope) CreateLocalScope() *Scope { return NewScope(s) }

// CreateLambdaScope creates a child scope for a lambda body. Type-variables of implicitly-typed
// parameters should be pinned with TreatAsNonGeneric.
func (s *Scope) CreateLambdaScope() *Scope { return NewScope(s) }

// CreateMemberScope creates a scope holding the members of a type. The member scope does not
// inherit bindings from s, but shares its session.
func (s *Scope) CreateMemberScope(members Bindings) *Scope {
	return &Scope{locals: members, session: s.session}
}

// Unifier returns the unifier of the session.
func (s *Scope) Unifier() *TypeUnifier { return s.session.unifier }

// Bind name to t within the current frame, replacing any binding of name within the frame.
func (s *Scope) Bind(name string, t types.DataType) { s.locals = s.locals.Set(name, t) }

// TryGet finds the binding of name nearest the current frame. The type is normalized, then
// each generic type-variable within it which is not pinned is replaced with a fresh variable.
func (s *Scope) TryGet(name string) (types.DataType, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if t, ok := frame.locals.Get(name); ok {
			t = s.Unifier().Normalize(t)
			return s.session.common.Instantiate(t, s.IsGeneric), true
		}
	}
	return nil, false
}

// Contains reports whether name is bound within the current frame or any enclosing frame.
func (s *Scope) Contains(name string) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.locals.Get(name); ok {
			return true
		}
	}
	return false
}

// TryIncludeUniqueBinding binds name to t, unless name is already visible from the current frame.
func (s *Scope) TryIncludeUniqueBinding(name string, t types.DataType) bool {
	if s.Contains(name) {
		return false
	}
	s.Bind(name, t)
	return true
}

// TreatAsNonGeneric pins type-variables within the current frame and its descendants.
func (s *Scope) TreatAsNonGeneric(vars ...types.TypeVariable) {
	s.pinned = append(s.pinned, vars...)
}

// IsGeneric reports whether tv is not pinned within the current frame or any enclosing frame.
func (s *Scope) IsGeneric(tv types.TypeVariable) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if slices.IndexFunc(frame.pinned, func(p types.TypeVariable) bool { return p.Id() == tv.Id() }) >= 0 {
			return false
		}
	}
	return true
}

// NewTypeVariable creates a generic type-variable with an id unique within the session.
func (s *Scope) NewTypeVariable() types.TypeVariable { return s.session.common.VarTracker.New(true) }

// NewNonGenericTypeVariable creates a non-generic type-variable with an id unique within the session.
func (s *Scope) NewNonGenericTypeVariable() types.TypeVariable {
	return s.session.common.VarTracker.New(false)
}

// Names returns the sorted, distinct identifiers visible from the current frame.
func (s *Scope) Names() []string {
	var names []string
	for frame := s; frame != nil; frame = frame.parent {
		frame.locals.Range(func(name string, _ types.DataType) bool {
			names = append(names, name)
			return true
		})
	}
	slices.Sort(names)
	return slices.Compact(names)
}

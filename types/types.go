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

// Package types is the data-type model of the language: named types with ordered
// generic arguments, type-variables tagged generic or non-generic, and an unknown
// sentinel which stands in for the type of an expression that failed to check.
package types

// DataType is the base interface for all types.
type DataType interface {
	// Name of the type. Type-variables are named by their id.
	Name() string
	// IsGeneric reports whether the type has generic arguments (or, for a type-variable,
	// whether the variable was created generic).
	IsGeneric() bool
	// IsGenericTypeDefinition reports whether the type is an unbound generic template.
	IsGenericTypeDefinition() bool
	// GenericArguments returns the ordered generic arguments of the type.
	GenericArguments() TypeList
	String() string

	dataType()
}

var (
	_ DataType = (*NamedType)(nil)
	_ DataType = TypeVariable{}
	_ DataType = (*UnknownType)(nil)
)

func (t *NamedType) dataType()   {}
func (t TypeVariable) dataType() {}
func (t *UnknownType) dataType() {}

// Named type: `int`, `Vector<int>`, `Func<int, bool>`
type NamedType struct {
	name  string
	args  TypeList
	arity int
	def   bool
}

// NewNamedType creates a named type with the given generic arguments.
func NewNamedType(name string, args ...DataType) *NamedType {
	return &NamedType{name: name, args: NewTypeList(args...), arity: len(args)}
}

// Definition creates an unbound generic template with the given arity: `Vector<>`
func Definition(name string, arity int) *NamedType {
	if arity < 1 {
		panic("generic type definitions must have at least one type parameter")
	}
	return &NamedType{name: name, args: EmptyTypeList, arity: arity, def: true}
}

func (t *NamedType) Name() string                  { return t.name }
func (t *NamedType) IsGeneric() bool               { return t.args.Len() > 0 }
func (t *NamedType) IsGenericTypeDefinition() bool { return t.def }
func (t *NamedType) GenericArguments() TypeList    { return t.args }
func (t *NamedType) String() string                { return TypeString(t) }

// Arity returns the number of generic arguments (or type parameters, for a definition).
func (t *NamedType) Arity() int { return t.arity }

// MakeGenericType binds the type parameters of a generic type definition.
//
// MakeGenericType panics if t is not a generic type definition or if the number of
// arguments does not match the arity of the definition.
func (t *NamedType) MakeGenericType(args ...DataType) *NamedType {
	if !t.def {
		panic("cannot bind type arguments of non-generic type " + t.name)
	}
	if len(args) != t.arity {
		panic("wrong number of type arguments for generic type " + t.name)
	}
	return NewNamedType(t.name, args...)
}

// withArgs returns a copy of t with replaced generic arguments.
func (t *NamedType) withArgs(args TypeList) *NamedType {
	return &NamedType{name: t.name, args: args, arity: args.Len()}
}

// Type-variable: `0`, `1`, ...
//
// Type-variables are identified by id; the generic flag is carried with the variable
// but does not take part in identity.
type TypeVariable struct {
	id      uint64
	generic bool
}

// Create a generic type-variable.
func NewTypeVariable(id uint64) TypeVariable { return TypeVariable{id: id, generic: true} }

// Create a non-generic type-variable.
func NewNonGenericTypeVariable(id uint64) TypeVariable { return TypeVariable{id: id} }

func (tv TypeVariable) Id() uint64                    { return tv.id }
func (tv TypeVariable) Name() string                  { return TypeString(tv) }
func (tv TypeVariable) IsGeneric() bool               { return tv.generic }
func (tv TypeVariable) IsGenericTypeDefinition() bool { return false }
func (tv TypeVariable) GenericArguments() TypeList    { return EmptyTypeList }
func (tv TypeVariable) String() string                { return TypeString(tv) }

// UnknownType is the type of an expression whose type could not be determined.
// Unification against the unknown type always succeeds silently.
type UnknownType struct{}

// Unknown is the singleton unknown type.
var Unknown = &UnknownType{}

func (t *UnknownType) Name() string                  { return "?" }
func (t *UnknownType) IsGeneric() bool               { return false }
func (t *UnknownType) IsGenericTypeDefinition() bool { return false }
func (t *UnknownType) GenericArguments() TypeList    { return EmptyTypeList }
func (t *UnknownType) String() string                { return "?" }

// IsUnknown reports whether t is missing or the unknown type.
func IsUnknown(t DataType) bool {
	if t == nil {
		return true
	}
	_, ok := t.(*UnknownType)
	return ok
}

// Equal reports whether a and b are structurally equal. Named types are equal if their
// names, arities, and arguments are equal; type-variables are equal if their ids are equal.
func Equal(a, b DataType) bool {
	switch a := a.(type) {
	case TypeVariable:
		b, ok := b.(TypeVariable)
		return ok && a.id == b.id
	case *NamedType:
		b, ok := b.(*NamedType)
		if !ok {
			return false
		}
		if a == b {
			return true
		}
		if a.name != b.name || a.arity != b.arity || a.def != b.def {
			return false
		}
		for i := 0; i < a.args.Len(); i++ {
			if !Equal(a.args.Get(i), b.args.Get(i)) {
				return false
			}
		}
		return true
	case *UnknownType:
		return IsUnknown(b)
	case nil:
		return b == nil
	}
	panic("unexpected type " + a.String())
}

// Contains reports whether tv occurs anywhere within t.
func Contains(t DataType, tv TypeVariable) bool {
	switch t := t.(type) {
	case TypeVariable:
		return t.id == tv.id
	case *NamedType:
		found := false
		t.args.Range(func(_ int, arg DataType) bool {
			found = Contains(arg, tv)
			return !found
		})
		return found
	}
	return false
}

// FindTypeVariables returns the distinct type-variables within t, in order of first occurrence.
func FindTypeVariables(t DataType) []TypeVariable {
	return findTypeVariables(nil, t)
}

func findTypeVariables(found []TypeVariable, t DataType) []TypeVariable {
	switch t := t.(type) {
	case TypeVariable:
		for _, tv := range found {
			if tv.id == t.id {
				return found
			}
		}
		return append(found, t)
	case *NamedType:
		t.args.Range(func(_ int, arg DataType) bool {
			found = findTypeVariables(found, arg)
			return true
		})
	}
	return found
}

// ReplaceTypeVariables substitutes type-variables within t, keyed by id. Named types without
// replaced arguments are shared rather than copied.
func ReplaceTypeVariables(t DataType, substitutions map[uint64]DataType) DataType {
	switch t := t.(type) {
	case TypeVariable:
		if r, ok := substitutions[t.id]; ok {
			return r
		}
		return t
	case *NamedType:
		if !t.IsGeneric() {
			return t
		}
		var b TypeListBuilder
		changed := false
		t.args.Range(func(i int, arg DataType) bool {
			r := ReplaceTypeVariables(arg, substitutions)
			if r != arg {
				if !changed {
					b, changed = t.args.Builder(), true
				}
				b.Set(i, r)
			}
			return true
		})
		if !changed {
			return t
		}
		return t.withArgs(b.Build())
	}
	return t
}

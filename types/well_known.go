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

// Names of the well-known types.
const (
	IntegerName     = "int"
	BooleanName     = "bool"
	StringName      = "string"
	VoidName        = "void"
	FunctionName    = "Func"
	EnumerableName  = "Enumerable"
	VectorName      = "Vector"
	NullableName    = "Nullable"
	ConstructorName = "Constructor"
)

var (
	Integer = NewNamedType(IntegerName)
	Boolean = NewNamedType(BooleanName)
	String  = NewNamedType(StringName)
	Void    = NewNamedType(VoidName)

	EnumerableDefinition  = Definition(EnumerableName, 1)
	VectorDefinition      = Definition(VectorName, 1)
	NullableDefinition    = Definition(NullableName, 1)
	ConstructorDefinition = Definition(ConstructorName, 1)
)

// Function type: `Func<int, int, bool>` for parameters `(int, int)` returning `bool`
func Function(params []DataType, ret DataType) *NamedType {
	args := make([]DataType, 0, len(params)+1)
	args = append(args, params...)
	return NewNamedType(FunctionName, append(args, ret)...)
}

// Lazy sequence: `Enumerable<int>`
func Enumerable(item DataType) *NamedType { return EnumerableDefinition.MakeGenericType(item) }

// Immutable indexed sequence: `Vector<int>`
func Vector(item DataType) *NamedType { return VectorDefinition.MakeGenericType(item) }

// Optional value: `Nullable<int>`
func Nullable(value DataType) *NamedType { return NullableDefinition.MakeGenericType(value) }

// Type of a class name in expression position: `Constructor<Math>`
func Constructor(constructed DataType) *NamedType {
	return ConstructorDefinition.MakeGenericType(constructed)
}

// IsFunction reports whether t is a function type.
func IsFunction(t DataType) bool {
	nt, ok := t.(*NamedType)
	return ok && nt.name == FunctionName && nt.args.Len() > 0
}

// FunctionParts splits a function type into its parameter types and return type.
func FunctionParts(t *NamedType) (params []DataType, ret DataType) {
	n := t.args.Len()
	if n == 1 {
		return nil, t.args.Get(0)
	}
	return t.args.Slice(0, n-1).Types(), t.args.Get(n - 1)
}

// IsConstructor reports whether t is the type of a class name in expression position.
func IsConstructor(t DataType) bool {
	nt, ok := t.(*NamedType)
	return ok && nt.name == ConstructorName && nt.args.Len() == 1
}

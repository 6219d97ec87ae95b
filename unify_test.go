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
	"testing"

	"github.com/wdamron/rook/types"
)

func expectMessages(t *testing.T, msgs []string, want ...string) {
	t.Helper()
	if len(msgs) != len(want) {
		t.Fatalf("messages: %q, expected %q", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("messages: %q, expected %q", msgs, want)
		}
	}
}

func TestUnifyConcreteTypes(t *testing.T) {
	u := NewTypeUnifier()
	expectMessages(t, u.Unify(types.Integer, types.Integer))
	expectMessages(t, u.Unify(types.Integer, types.Boolean), "Type mismatch: expected int, found bool.")
	expectMessages(t, u.Unify(types.Vector(types.Integer), types.Enumerable(types.Integer)),
		"Type mismatch: expected Vector<int>, found Enumerable<int>.")
	expectMessages(t,
		u.Unify(types.Function(nil, types.Integer), types.Function([]types.DataType{types.Boolean}, types.Integer)),
		"Type mismatch: expected Func<int>, found Func<bool, int>.")
	expectMessages(t,
		u.Unify(types.NewNamedType("Pair", types.Integer, types.Boolean), types.NewNamedType("Pair", types.Boolean, types.Integer)),
		"Type mismatch: expected int, found bool.",
		"Type mismatch: expected bool, found int.")
	if u.Substitutions() != 0 {
		t.Fatalf("unexpected substitutions")
	}
}

func TestUnifyVariables(t *testing.T) {
	u := NewTypeUnifier()
	a, b, c := types.NewTypeVariable(0), types.NewTypeVariable(1), types.NewNonGenericTypeVariable(2)

	expectMessages(t, u.Unify(a, a))
	expectMessages(t, u.Unify(a, b))
	expectMessages(t, u.Unify(types.Integer, b))
	if ty := u.Normalize(a); ty != types.DataType(types.Integer) {
		t.Fatalf("type: %s", ty)
	}
	if u.Substitutions() != 2 {
		t.Fatalf("substitutions: %d", u.Substitutions())
	}

	fn := types.Function([]types.DataType{c}, c)
	expectMessages(t, u.Unify(fn, types.Function([]types.DataType{a}, types.Boolean)),
		"Type mismatch: expected int, found bool.")
	if ty := types.TypeString(u.Normalize(fn)); ty != "Func<int, int>" {
		t.Fatalf("type: %s", ty)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	u := NewTypeUnifier()
	a := types.NewTypeVariable(0)
	expectMessages(t, u.Unify(a, types.Enumerable(a)), "Type mismatch: expected 0, found Enumerable<0>.")
	expectMessages(t, u.Unify(types.Enumerable(a), a), "Type mismatch: expected 0, found Enumerable<0>.")
	if u.Substitutions() != 0 {
		t.Fatalf("unexpected substitutions")
	}
}

func TestUnifyUnknown(t *testing.T) {
	u := NewTypeUnifier()
	a := types.NewTypeVariable(0)
	expectMessages(t, u.Unify(types.Unknown, types.Integer))
	expectMessages(t, u.Unify(a, types.Unknown))
	expectMessages(t, u.Unify(types.Vector(types.Unknown), types.Vector(types.Boolean)))
	if u.Substitutions() != 0 {
		t.Fatalf("unexpected substitutions")
	}
}

func TestNormalizeSharesTypes(t *testing.T) {
	u := NewTypeUnifier()
	a, b := types.NewTypeVariable(0), types.NewTypeVariable(1)
	v := types.Vector(b)
	if u.Normalize(v) != types.DataType(v) {
		t.Fatalf("expected unchanged type")
	}
	if u.Normalize(types.Integer) != types.DataType(types.Integer) {
		t.Fatalf("expected unchanged type")
	}

	// a -> b -> Vector<int>
	u.Unify(a, b)
	u.Unify(b, types.Vector(types.Integer))
	if ty := types.TypeString(u.Normalize(types.Function([]types.DataType{a}, types.Integer))); ty != "Func<Vector<int>, int>" {
		t.Fatalf("type: %s", ty)
	}
	// Path compression:
	if sub := u.substitutions[a.Id()]; types.TypeString(sub) != "Vector<int>" {
		t.Fatalf("substitution: %s", sub)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	u := NewTypeUnifier()
	a, b, c := types.NewTypeVariable(0), types.NewTypeVariable(1), types.NewTypeVariable(2)

	// a -> b -> Vector<int>, c unbound
	u.Unify(a, b)
	u.Unify(b, types.Vector(types.Integer))

	for _, ty := range []types.DataType{
		a,
		b,
		c,
		types.Integer,
		types.Function([]types.DataType{a, c}, b),
		types.Nullable(types.Vector(a)),
	} {
		once := u.Normalize(ty)
		if twice := u.Normalize(once); !types.Equal(once, twice) {
			t.Fatalf("normalize(%s): %s, then %s", ty, once, twice)
		}
		if types.Contains(once, a) || types.Contains(once, b) {
			t.Fatalf("normalize(%s): %s contains a substituted variable", ty, once)
		}
	}
}

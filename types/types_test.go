package types

import "testing"

func TestTruthiness(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", NullValue, false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero int", NewInt(0), false},
		{"nonzero int", NewInt(5), true},
		{"zero float", NewFloat(0), false},
		{"nan float", NewFloat(nan()), false},
		{"empty string", NewString(""), false},
		{"nonempty string", NewString("x"), true},
		{"empty list", NewList(nil), false},
		{"nonempty list", NewList([]Value{NewInt(1)}), true},
		{"empty dict", NewDict(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestListReferenceSemantics(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2)})
	alias := l
	alias.Set(0, NewInt(99))
	if l.Get(0).(Int).Int64() != 99 {
		t.Errorf("mutation through alias not observed: got %v", l.Get(0))
	}
}

func TestListSliceAndAppendAreIndependent(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})
	s := l.Slice(0, 2)
	s.Set(0, NewInt(99))
	if l.Get(0).(Int).Int64() != 1 {
		t.Errorf("Slice() should not alias the original, original was mutated: %v", l.Get(0))
	}

	appended := l.Append(NewInt(4))
	if l.Len() != 3 {
		t.Errorf("Append() should not mutate the receiver, len = %d, want 3", l.Len())
	}
	if appended.Len() != 4 {
		t.Errorf("Append() result len = %d, want 4", appended.Len())
	}
}

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", NewInt(2))
	d.Set("a", NewInt(1))
	d.Set("b", NewInt(20)) // re-setting an existing key must not reorder it

	want := []string{"b", "a"}
	got := d.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnvironmentCopyAliasesContainerValuesButNotBindings(t *testing.T) {
	env := NewEnvironment()
	l := NewList([]Value{NewInt(1)})
	env.Set("x", l)

	clone := env.Copy()
	clone.Set("y", NewInt(2))

	if env.Has("y") {
		t.Error("writing a new binding to the copy leaked back into the original")
	}

	cv, _ := clone.Get("x")
	cv.(List).Set(0, NewInt(42))
	ov, _ := env.Get("x")
	if ov.(List).Get(0).(Int).Int64() != 42 {
		t.Error("List binding should still alias the same backing store after Copy()")
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		v        Value
		wantRank int
		wantOk   bool
	}{
		{NewBool(true), 0, true},
		{NewInt(1), 1, true},
		{NewFloat(1), 2, true},
		{NewComplex(complex(1, 1)), 3, true},
		{NewString("x"), 0, false},
	}
	for _, tt := range tests {
		rank, ok := Rank(tt.v)
		if ok != tt.wantOk || (ok && rank != tt.wantRank) {
			t.Errorf("Rank(%v) = (%d, %v), want (%d, %v)", tt.v, rank, ok, tt.wantRank, tt.wantOk)
		}
	}
}

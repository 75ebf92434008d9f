package dierr

import (
	"errors"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	e := NewNameError(3, 7, "name 'x' is not defined")
	want := "Error in line 3, char 7 (approximate position): name 'x' is not defined"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestConstructorsProduceDistinctTypes(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"StaticSyntaxError", NewStaticSyntaxError(1, 1, "unexpected token")},
		{"RuntimeSyntaxError", NewRuntimeSyntaxError(1, 1, "left-hand side is not assignable")},
		{"NameError", NewNameError(1, 1, "undefined")},
		{"TypeError", NewTypeError(1, 1, "bad operand type")},
		{"ValueError", NewValueError(1, 1, "dimension mismatch")},
		{"ZeroDivisionError", NewZeroDivisionError(1, 1, "division by zero")},
		{"IndexError", NewIndexError(1, 1, "index out of range")},
		{"FunctionArgsCountError", NewFunctionArgsCountError(1, 1, "wrong number of arguments")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() == "" {
				t.Fatal("Error() returned empty string")
			}
		})
	}

	// A constructor's result must be distinguishable via a type switch,
	// the way eval/interp callers discriminate DI failures; checked here
	// for the NameError entry.
	var got string
	switch tests[2].err.(type) {
	case NameError:
		got = "NameError"
	default:
		got = "other"
	}
	if got != "NameError" {
		t.Errorf("type switch on NameError matched %q", got)
	}
}

func TestErrorsAreNotEqualAcrossKinds(t *testing.T) {
	a := NewTypeError(1, 1, "same message")
	b := NewValueError(1, 1, "same message")
	if errors.Is(a, b) {
		t.Error("a TypeError and a ValueError with identical text should not be errors.Is-equal")
	}
}

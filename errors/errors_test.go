package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/Ki11erRabbit/Maru/errors"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{
			name: "minimal",
			err:  errors.New(errors.PhaseDecode, errors.KindBadMagic).Build(),
			want: "[decode] bad_magic",
		},
		{
			name: "with path and detail",
			err: errors.New(errors.PhaseDecode, errors.KindTruncated).
				Path("bytecode_table", "entry[0]").
				Detail("need %d bytes, have %d", 10, 2).
				Build(),
			want: "[decode] truncated at bytecode_table.entry[0]: need 10 bytes, have 2",
		},
		{
			name: "with cause",
			err: errors.New(errors.PhaseValidate, errors.KindOutOfRange).
				Detail("string index out of range").
				Cause(stderrors.New("underlying")).
				Build(),
			want: "[validate] out_of_range: string index out of range (caused by: underlying)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	a := errors.New(errors.PhaseDecode, errors.KindTruncated).Build()
	b := errors.New(errors.PhaseDecode, errors.KindTruncated).Detail("different detail").Build()
	c := errors.New(errors.PhaseDecode, errors.KindBadMagic).Build()

	if !stderrors.Is(a, b) {
		t.Errorf("expected a.Is(b) with matching phase/kind")
	}
	if stderrors.Is(a, c) {
		t.Errorf("expected a.Is(c) to be false with differing kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := errors.New(errors.PhaseAlloc, errors.KindAllocation).Cause(cause).Build()

	if stderrors.Unwrap(err) != cause {
		t.Errorf("Unwrap() did not return the wrapped cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		err := errors.Truncated(errors.PhaseDecode, []string{"string_table"}, 4, 1)
		if err.Kind != errors.KindTruncated {
			t.Errorf("Kind = %v, want KindTruncated", err.Kind)
		}
	})

	t.Run("BadMagic", func(t *testing.T) {
		err := errors.BadMagic(0xFF)
		if err.Kind != errors.KindBadMagic {
			t.Errorf("Kind = %v, want KindBadMagic", err.Kind)
		}
		if err.Value.(byte) != 0xFF {
			t.Errorf("Value = %v, want 0xFF", err.Value)
		}
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := errors.UnknownTag(errors.PhaseDecode, nil, "MaruTypeTag", 255)
		if err.Kind != errors.KindUnknownTag {
			t.Errorf("Kind = %v, want KindUnknownTag", err.Kind)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := errors.OutOfRange(errors.PhaseValidate, nil, "string_index", 42, 10)
		if err.Kind != errors.KindOutOfRange {
			t.Errorf("Kind = %v, want KindOutOfRange", err.Kind)
		}
	})

	t.Run("AlreadySet", func(t *testing.T) {
		err := errors.AlreadySet(errors.PhaseFunctable, "function pointer")
		if err.Kind != errors.KindAlreadySet {
			t.Errorf("Kind = %v, want KindAlreadySet", err.Kind)
		}
	})

	t.Run("Trap", func(t *testing.T) {
		err := errors.Trap("division by zero")
		if err.Kind != errors.KindTrap {
			t.Errorf("Kind = %v, want KindTrap", err.Kind)
		}
		if err.Phase != errors.PhaseDispatch {
			t.Errorf("Phase = %v, want PhaseDispatch", err.Phase)
		}
	})
}

package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chessnote/internal/errors"
)

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("ply 3: %w", chesserrors.ErrNoMatchingMove)
	AssertErrorIs(t, err, chesserrors.ErrNoMatchingMove)
	AssertErrorIs(t, err, chesserrors.ErrIllegalMove, "parent sentinel")
	AssertKind(t, err, chesserrors.KindIllegal)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"message"}, "message"},
		{"format with args", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, formatMessage(tt.args...), tt.want)
		})
	}
}

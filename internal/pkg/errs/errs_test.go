//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"slotbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Run("sees a marker attached with Mark", func(t *testing.T) {
		err := errs.Mark(errors.New("no rows"), errs.ErrServiceNotFound)

		assert.True(t, errs.Is(err, errs.ErrServiceNotFound))
		assert.False(t, errs.Is(err, errs.ErrServiceInactive))
	})

	t.Run("sees a marker through additional wrapping", func(t *testing.T) {
		err := errs.Mark(errors.New("exclusion violation"), errs.ErrSlotConflict)
		err = errs.Wrap(err, "book appointment")

		assert.True(t, errs.Is(err, errs.ErrSlotConflict))
	})

	t.Run("matches a bare sentinel", func(t *testing.T) {
		assert.True(t, errs.Is(errs.ErrInvalidDuration, errs.ErrInvalidDuration))
	})

	t.Run("nil error matches nothing", func(t *testing.T) {
		assert.False(t, errs.Is(nil, errs.ErrServiceNotFound))
	})
}

func TestMark(t *testing.T) {
	t.Run("nil cause returns the marker itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrUserNotFound)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

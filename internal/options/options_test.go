package options

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type decoderSettings struct {
	extension string
	period    time.Duration
	calls     []string
}

var errBadPeriod = errors.New("period must be positive")

func withExtension(ext string) Option[*decoderSettings] {
	return NoError(func(s *decoderSettings) {
		s.extension = ext
		s.calls = append(s.calls, "extension")
	})
}

func withPeriod(d time.Duration) Option[*decoderSettings] {
	return New(func(s *decoderSettings) error {
		if d <= 0 {
			return errBadPeriod
		}
		s.period = d
		s.calls = append(s.calls, "period")

		return nil
	})
}

func TestApply(t *testing.T) {
	t.Run("AppliesInOrder", func(t *testing.T) {
		s := &decoderSettings{}
		err := Apply(s, withExtension(".bi5"), withPeriod(time.Hour), withExtension(".bi5.xz"))
		require.NoError(t, err)
		require.Equal(t, ".bi5.xz", s.extension)
		require.Equal(t, time.Hour, s.period)
		require.Equal(t, []string{"extension", "period", "extension"}, s.calls)
	})

	t.Run("StopsAtFirstError", func(t *testing.T) {
		s := &decoderSettings{}
		err := Apply(s, withExtension(".bi5"), withPeriod(0), withExtension(".never"))
		require.ErrorIs(t, err, errBadPeriod)
		require.Contains(t, err.Error(), "option #1")
		require.Equal(t, ".bi5", s.extension)
		require.Equal(t, []string{"extension"}, s.calls)
	})

	t.Run("SkipsNilOptions", func(t *testing.T) {
		s := &decoderSettings{}
		err := Apply(s, nil, withPeriod(time.Minute))
		require.NoError(t, err)
		require.Equal(t, time.Minute, s.period)
	})

	t.Run("NoOptions", func(t *testing.T) {
		s := &decoderSettings{}
		require.NoError(t, Apply(s))
		require.Empty(t, s.calls)
	})
}

func TestGenericTargets(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, NoError(func(p *int) { *p = 42 })))
	require.Equal(t, 42, n)
}

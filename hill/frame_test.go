package hill_test

import (
	"testing"

	"github.com/katalvlaran/hill/hill"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "HELLOWORLD", hill.Normalize("Hello, World!"))
	require.Equal(t, "HLLO", hill.Normalize("héllo"))
	require.Equal(t, "", hill.Normalize("123 !?"))
	require.Equal(t, "", hill.Normalize(""))
}

func TestFrame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		m    int
		want []hill.Block
	}{
		{"exact", "July", 2, []hill.Block{{9, 20}, {11, 24}}},
		{"padded", "ACT", 2, []hill.Block{{0, 2}, {19, 23}}},
		{"filtered and padded", "a-c t!", 4, []hill.Block{{0, 2, 19, 23}}},
		{"m=1", "Hi", 1, []hill.Block{{7}, {8}}},
		{"no padding needed", "ACT", 3, []hill.Block{{0, 2, 19}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := hill.Frame(tc.text, tc.m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			for _, b := range got {
				require.Len(t, b, tc.m)
			}
		})
	}
}

func TestFrameEmpty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "!!!", "42"} {
		got, err := hill.Frame(text, 3)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestFrameInvalidDimension(t *testing.T) {
	t.Parallel()

	for _, m := range []int{0, -1} {
		_, err := hill.Frame("JULY", m)
		require.ErrorIs(t, err, hill.ErrInvalidDimension, "m=%d", m)
	}
}

func TestFramePadLetterOption(t *testing.T) {
	t.Parallel()

	got, err := hill.Frame("ACT", 2, hill.WithPadLetter('q'))
	require.NoError(t, err)
	require.Equal(t, []hill.Block{{0, 2}, {19, 16}}, got)
}

func TestUnframe(t *testing.T) {
	t.Parallel()

	got, err := hill.Unframe("DELW", 2)
	require.NoError(t, err)
	require.Equal(t, []hill.Block{{3, 4}, {11, 22}}, got)

	got, err = hill.Unframe("delw", 4)
	require.NoError(t, err)
	require.Equal(t, []hill.Block{{3, 4, 11, 22}}, got)

	got, err = hill.Unframe("", 2)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = hill.Unframe("DEL", 2)
	require.ErrorIs(t, err, hill.ErrInvalidLength)

	_, err = hill.Unframe("DE1W", 2)
	require.ErrorIs(t, err, hill.ErrInvalidCharacter)

	_, err = hill.Unframe("DE W", 2) // no filtering on the decrypt side
	require.ErrorIs(t, err, hill.ErrInvalidCharacter)

	_, err = hill.Unframe("DELW", 0)
	require.ErrorIs(t, err, hill.ErrInvalidDimension)
}

func TestStripPadding(t *testing.T) {
	t.Parallel()

	require.Equal(t, "JULY", hill.StripPadding("JULYXX"))
	require.Equal(t, "", hill.StripPadding("XXX"))
	require.Equal(t, "AXB", hill.StripPadding("AXB"))
	require.Equal(t, "MAX", hill.StripPadding("MAXQ", hill.WithPadLetter('Q')))
	// Whole-string, not per block: "BOXX" loses both X's.
	require.Equal(t, "BO", hill.StripPadding("BOXX"))
}

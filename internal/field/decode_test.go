package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTrimsTrailingOnly(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		stop  int
		want  Str
	}{
		{"trailing_spaces_stripped", "ABCBT  01", 2, 7, "CBT"},
		{"leading_spaces_kept", "X   AB", 1, 6, "  AB"},
		{"all_blank_is_empty", "X      ", 1, 6, ""},
		{"interior_spaces_kept", "  A B  ", 2, 7, "A B"},
		{"empty_range", "ABCDEF", 3, 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.line, tt.start, tt.stop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRangeError(t *testing.T) {
	_, err := String("short", 2, 10)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 2, re.Start)
	assert.Equal(t, 10, re.Stop)
	assert.Equal(t, 5, re.LineLen)
}

func TestStringGroupOmitsEmptyChunks(t *testing.T) {
	// Six-character chunks, middle one blank.
	line := "xx06    07          3CC   "
	got, err := StringGroup(line, 2, 26, 6)
	require.NoError(t, err)
	assert.Equal(t, StrSeq{"06", "07", "3CC"}, got)
}

func TestStringGroupAllBlankIsEmptySequence(t *testing.T) {
	got, err := StringGroup("xx            ", 2, 14, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIntegerAbsentNotZero(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		start int
		stop  int
		want  Int
	}{
		{"plain", "xx202507", 2, 8, Int{Int64: 202507, Valid: true}},
		{"zero_padded", "xx000042", 2, 8, Int{Int64: 42, Valid: true}},
		{"negative", "xx-00042", 2, 8, Int{Int64: -42, Valid: true}},
		{"surrounded_by_blanks", "xx  42  ", 2, 8, Int{Int64: 42, Valid: true}},
		{"all_blank_is_absent", "xx      ", 2, 8, Int{}},
		{"garbage_is_absent", "xx1x2507", 2, 8, Int{}},
		{"explicit_zero_is_valid", "xx000000", 2, 8, Int{Int64: 0, Valid: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Integer(tt.line, tt.start, tt.stop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScaledFloat(t *testing.T) {
	got, err := ScaledFloat("T CLPCUSD$0000001063", 10, 20, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, Float(0.001063), got)
}

func TestScaledFloatOutOfBandSign(t *testing.T) {
	s := 1e-3 // runtime value, matching the decoder's arithmetic
	tests := []struct {
		name  string
		line  string
		scale float64
		want  Float
	}{
		// Field is [2,7); the sign probe reads position 7.
		{"negative_scale_with_minus", "xx00123-", -1e-3, Float(-(123 * s))},
		{"negative_scale_with_plus", "xx00123+", -1e-3, Float(123 * s)},
		{"negative_scale_with_space", "xx00123 ", -1e-3, Float(123 * s)},
		{"negative_scale_with_digit", "xx001239", -1e-3, Float(123 * s)},
		{"negative_scale_line_ends_at_stop", "xx00123", -1e-3, Float(123 * s)},
		{"positive_scale_ignores_minus", "xx00123-", 1e-3, Float(123 * s)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScaledFloat(tt.line, 2, 7, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScaledFloatUnparsableIsNaN(t *testing.T) {
	got, err := ScaledFloat("xx     ", 2, 7, 1e-6)
	require.NoError(t, err)
	assert.True(t, got.IsNaN())
}

func TestScaledFloatRangeError(t *testing.T) {
	_, err := ScaledFloat("xx123", 2, 7, 1e-6)
	var re *RangeError
	require.ErrorAs(t, err, &re)
}

func TestDateAt(t *testing.T) {
	got, err := DateAt("xx20250620", 2)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: 6, Day: 20}, got)
}

func TestDateAtMalformedIsFatal(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"blank", "xx        "},
		{"garbage", "xx2025062X"},
		{"bad_month", "xx20251320"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DateAt(tt.line, 2)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestTimeAtBlankDefaultsToMidnight(t *testing.T) {
	tests := []struct {
		name string
		line string
		want TimeOfDay
	}{
		{"valid", "xx1407", TimeOfDay{Hour: 14, Minute: 7}},
		{"midnight_explicit", "xx0000", TimeOfDay{}},
		{"blank_defaults", "xx    ", TimeOfDay{}},
		{"out_of_range_defaults", "xx2961", TimeOfDay{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeAt(tt.line, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTierSpans(t *testing.T) {
	// Two numeric chunks followed by two blank chunks.
	line := "xx" + "0120250720250702202508202508" + "              " + "              "
	got, err := TierSpans(line, 2, 58)
	require.NoError(t, err)
	assert.Equal(t, Spans{
		{Begin: 202507, End: 202507},
		{Begin: 202508, End: 202508},
	}, got)
}

func TestTierSpansSkipsNonNumericChunks(t *testing.T) {
	// A chunk with a single non-digit is excluded wholesale.
	line := "xx" + "01202507202507" + "01202508 02508"
	got, err := TierSpans(line, 2, 30)
	require.NoError(t, err)
	assert.Equal(t, Spans{{Begin: 202507, End: 202507}}, got)
}

func TestSignedMagnitudes(t *testing.T) {
	// Expected values are computed at runtime so they match the decoder's
	// float arithmetic exactly.
	scale := 1e-4
	line := "xx" + "00000+" + "00567-" + "01133+" + "01133-"
	got, err := SignedMagnitudes(line, 2, 26)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, -0.0567, got[1])
	assert.Equal(t, 1133*scale, got[2])
	assert.Equal(t, -(1133 * scale), got[3])
}

func TestSignedMagnitudesCountIsFixed(t *testing.T) {
	// Unlike TierSpans, blank-sign chunks still decode; only the magnitude
	// must parse.
	line := "xx" + "00001 " + "00002x"
	got, err := SignedMagnitudes(line, 2, 14)
	require.NoError(t, err)
	assert.Equal(t, Risk{0.0001, 0.0002}, got)
}

func TestSignedMagnitudesMalformedIsFatal(t *testing.T) {
	line := "xx" + "00x01-"
	_, err := SignedMagnitudes(line, 2, 8)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestDecodeIsDeterministic(t *testing.T) {
	line := "82CBT06        06        OOFC202507   202507   000014500000+00000+00000+00000+00000+00000+00000+00000+002500000139100++10000+C"
	a, err := SignedMagnitudes(line, 54, 96)
	require.NoError(t, err)
	b, err := SignedMagnitudes(line, 54, 96)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	f1, err := ScaledFloat(line, 96, 101, -1e-3)
	require.NoError(t, err)
	f2, err := ScaledFloat(line, 96, 101, -1e-3)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestNaNSentinelDistinctFromZero(t *testing.T) {
	blank, err := ScaledFloat("xx       ", 2, 9, 1e-6)
	require.NoError(t, err)
	zero, err := ScaledFloat("xx0000000", 2, 9, 1e-6)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(blank)))
	assert.Equal(t, Float(0), zero)
}

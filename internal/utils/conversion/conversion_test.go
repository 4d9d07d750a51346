package conversion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert_KnownValues(t *testing.T) {
	assert.Equal(t, 95.5, Convert(1, 95.5))
	assert.Equal(t, 955.0, Convert(10, 95.5))
	assert.Equal(t, 250.0, Convert(2.5, 100), "rounding boundary")
	assert.Equal(t, 0.64, Convert(1, 0.64))
	assert.Equal(t, 0.13, Convert(0.125, 1), "exact half rounds away from zero")
	assert.Equal(t, -0.13, Convert(-0.125, 1), "negative half rounds away from zero")
	assert.Equal(t, 1.0, Convert(1.005, 1), "1.005 is stored just below the tie")
}

func TestConvert_ZeroAmount(t *testing.T) {
	for _, rate := range []float64{0.01, 0.64, 95.5, 119.8, 1e6} {
		assert.Equal(t, 0.0, Convert(0, rate), "rate %v", rate)
	}
}

func TestConvert_MatchesRoundedProduct(t *testing.T) {
	amounts := []float64{0, 0.5, 1, 3.333, 17.25, 100, 999.99, 12345.678}
	rates := []float64{0.64, 13.2, 26, 95.24, 103.2, 119.8}

	for _, rate := range rates {
		prev := math.Inf(-1)
		for _, amount := range amounts {
			got := Convert(amount, rate)
			want := math.Round(amount*rate*100) / 100
			assert.Equal(t, want, got, "amount %v rate %v", amount, rate)
			assert.GreaterOrEqual(t, got, prev, "monotonic in amount for rate %v", rate)
			prev = got
		}
	}
}

func TestConvert_EqualsFloatRoundingAcrossGrid(t *testing.T) {
	rates := []float64{1, 0.5, 0.64, 13.2, 95.24, 103.09}

	for _, rate := range rates {
		mismatches := 0
		for i := 0; i <= 20000; i++ {
			amount := float64(i) / 1000
			if Convert(amount, rate) != math.Round(amount*rate*100)/100 {
				mismatches++
				if mismatches <= 3 {
					t.Errorf("Convert(%v, %v) = %v, want %v", amount, rate, Convert(amount, rate), math.Round(amount*rate*100)/100)
				}
			}
		}
		assert.Zero(t, mismatches, "rate %v", rate)
	}

	assert.Equal(t, 0.14, Convert(0.145, 1))
	assert.Equal(t, 0.14, Convert(0.29, 0.5))
	assert.Equal(t, 35.71, Convert(0.375, 95.24))
}

func TestConvert_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Convert(math.NaN(), 95.5)))
	assert.True(t, math.IsNaN(Convert(1, math.NaN())))
	assert.True(t, math.IsInf(Convert(math.Inf(1), 95.5), 1))
	assert.True(t, math.IsInf(Convert(1, math.Inf(-1)), -1))
}

func TestReciprocal(t *testing.T) {
	rate, ok := Reciprocal(0.0105)
	assert.True(t, ok)
	assert.Equal(t, 95.24, rate)

	rate, ok = Reciprocal(1.5625)
	assert.True(t, ok)
	assert.Equal(t, 0.64, rate)

	for _, bad := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		_, ok := Reciprocal(bad)
		assert.False(t, ok, "quote %v", bad)
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 95.24, RoundTo(95.238095, 2))
	assert.Equal(t, 0.13, RoundTo(0.125, 2))
	assert.Equal(t, 96.0, RoundTo(95.5, 0))
	assert.True(t, math.IsNaN(RoundTo(math.NaN(), 2)))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1", 1},
		{" 2.5 ", 2.5},
		{"2,5", 2.5},
		{"10 000", 10000},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input))
		})
	}
}

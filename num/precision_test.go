package num_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash-utils/num"
)

type roundCase struct {
	number    float64
	precision []int
	want      float64
}

func (c roundCase) name() string {
	return fmt.Sprintf("%v@%v", c.number, c.precision)
}

func runRoundCases(t *testing.T, fn func(float64, ...int) float64, cases []roundCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name(), func(t *testing.T) {
			assert.Equal(t, c.want, fn(c.number, c.precision...))
		})
	}
}

func TestFloor(t *testing.T) {
	runRoundCases(t, num.Floor, []roundCase{
		{4.006, nil, 4},
		{4.006, []int{2}, 4},
		{-4.006, []int{2}, -4.01},
		{-1.5, nil, -2},
		{0.29, []int{2}, 0.29},
		{0.295, []int{2}, 0.29},
		{0.575, []int{2}, 0.57},
		{4060, []int{-2}, 4000},
		{4, []int{2}, 4},
	})
}

func TestCeil(t *testing.T) {
	runRoundCases(t, num.Ceil, []roundCase{
		{4.006, nil, 5},
		{4.006, []int{2}, 4.01},
		{6.004, []int{2}, 6.01},
		{6040, []int{-2}, 6100},
		{-6.1, nil, -6},
		{4, []int{2}, 4},
	})
}

func TestRound(t *testing.T) {
	runRoundCases(t, num.Round, []roundCase{
		{4.006, nil, 4},
		{4.006, []int{2}, 4.01},
		{4.004, []int{2}, 4},
		{4060, []int{-2}, 4100},
		{2.5, nil, 3},
		{-2.5, nil, -2},
		{-2.6, nil, -3},
		// 4.005*100 rounds to exactly 400.5 in binary.
		{4.005, []int{2}, 4.01},
		// 1.005*100 is 100.49999999999999.
		{1.005, []int{2}, 1},
	})
}

func TestRoundIntegerIsFixedPoint(t *testing.T) {
	for _, x := range []float64{0, 7, -12, 123456789, 1 << 40} {
		for _, p := range []int{0, 1, 2, 5, 20} {
			assert.Equal(t, x, num.Round(x, p), "Round(%v, %d)", x, p)
			assert.Equal(t, x, num.Floor(x, p), "Floor(%v, %d)", x, p)
			assert.Equal(t, x, num.Ceil(x, p), "Ceil(%v, %d)", x, p)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for name, fn := range map[string]func(float64, ...int) float64{
		"Floor": num.Floor,
		"Ceil":  num.Ceil,
		"Round": num.Round,
	} {
		t.Run(name, func(t *testing.T) {
			for p := 0; p <= 3; p++ {
				for k := -1000; k < 1000; k++ {
					for _, x := range []float64{
						float64(k)/100 + 0.005,
						float64(k) / 100,
						float64(k)/1000 + 0.0005,
						float64(k) / 7,
					} {
						once := fn(x, p)
						if twice := fn(once, p); twice != once {
							t.Fatalf("%s(%v, %d) = %v but %s(%v, %d) = %v", name, x, p, once, name, once, p, twice)
						}
					}
				}
			}
		})
	}
}

func TestPrecisionOverflow(t *testing.T) {
	assert.Equal(t, 1.5, num.Floor(1.5, 400))
	assert.Equal(t, 1.5, num.Ceil(1.5, 400))
	assert.Equal(t, 1.5, num.Round(1.5, -400))
	assert.Equal(t, 1e300, num.Ceil(1e300, 100))
	assert.Equal(t, -1e300, num.Floor(-1e300, 100))
}

func TestPrecisionNonFinite(t *testing.T) {
	for name, fn := range map[string]func(float64, ...int) float64{
		"Floor": num.Floor,
		"Ceil":  num.Ceil,
		"Round": num.Round,
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, math.IsNaN(fn(math.NaN(), 2)))
			assert.True(t, math.IsInf(fn(math.Inf(1), 2), 1))
			assert.True(t, math.IsInf(fn(math.Inf(-1)), -1))
		})
	}
}

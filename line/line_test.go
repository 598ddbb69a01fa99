package line

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/decgeom/internal/decmath"
	"github.com/hupe1980/decgeom/vector"
)

func TestNewDefaults(t *testing.T) {
	l, err := New(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, l.Dimension())
	assert.True(t, l.NormalVector().IsZero())
	assert.True(t, l.ConstantTerm().IsZero())

	_, ok := l.BasePoint()
	assert.False(t, ok)

	_, err = l.FirstNonzeroIndex()
	assert.ErrorIs(t, err, ErrNoNonzeroElements)
}

func TestNewInvalidDimension(t *testing.T) {
	_, err := New(vector.MustParse("1", "2", "3"), nil)

	var dimErr *ErrInvalidDimension
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Dimension)
}

func TestParse(t *testing.T) {
	l, err := Parse([]string{"7.204", "3.182"}, "8.68")
	require.NoError(t, err)
	assert.Equal(t, 0, l.ConstantTerm().Cmp(decmath.MustParse("8.68")))

	t.Run("empty constant defaults to zero", func(t *testing.T) {
		l, err := Parse([]string{"1", "0"}, "")
		require.NoError(t, err)
		assert.True(t, l.ConstantTerm().IsZero())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]string{"1", "bogus"}, "0")
		assert.Error(t, err)

		_, err = Parse([]string{"1", "0"}, "bogus")
		assert.Error(t, err)
	})
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse([]string{"1"}, "0") })
	assert.NotPanics(t, func() { MustParse([]string{"1", "0"}, "0") })
}

func TestFirstNonzeroIndex(t *testing.T) {
	idx, err := MustParse([]string{"10.115", "7.09"}, "0.1").FirstNonzeroIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = MustParse([]string{"0", "5"}, "1").FirstNonzeroIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// Coefficients below tolerance count as zero.
	_, err = MustParse([]string{"1e-16", "-1e-16"}, "1").FirstNonzeroIndex()
	assert.ErrorIs(t, err, ErrNoNonzeroElements)
}

func TestBasePoint(t *testing.T) {
	t.Run("satisfies the line equation", func(t *testing.T) {
		for _, tc := range [][2][]string{
			{{"7.204", "3.182"}, {"8.68"}},
			{{"10.115", "7.09"}, {"0.1"}},
			{{"0", "5"}, {"-2.5"}},
			{{"-3", "0"}, {"9"}},
		} {
			l := MustParse(tc[0], tc[1][0])

			bp, ok := l.BasePoint()
			require.True(t, ok)

			d, err := l.NormalVector().Dot(bp)
			require.NoError(t, err)

			residual := decmath.Sub(decmath.Context(0), d, l.ConstantTerm())
			assert.True(t, decmath.WithinTolerance(residual, l.Tolerance()))
		}
	})

	t.Run("first nonzero coordinate carries the value", func(t *testing.T) {
		l := MustParse([]string{"0", "5"}, "-2.5")

		bp, ok := l.BasePoint()
		require.True(t, ok)
		assert.True(t, bp.At(0).IsZero())
		assert.Equal(t, 0, bp.At(1).Cmp(decmath.MustParse("-0.5")))
	})

	t.Run("absent for a degenerate normal", func(t *testing.T) {
		l := MustParse([]string{"1e-16", "1e-16"}, "5")

		_, ok := l.BasePoint()
		assert.False(t, ok)
	})
}

func TestIsParallelTo(t *testing.T) {
	l1 := MustParse([]string{"10.115", "7.09"}, "0.1")
	l2 := MustParse([]string{"10.115", "7.09"}, "3.025")
	l3 := MustParse([]string{"7.204", "3.182"}, "8.68")

	assert.True(t, l1.IsParallelTo(l2))
	assert.True(t, l2.IsParallelTo(l1))
	assert.False(t, l1.IsParallelTo(l3))

	t.Run("scaled normals", func(t *testing.T) {
		a := MustParse([]string{"1", "1"}, "1")
		b := MustParse([]string{"-2", "-2"}, "7")
		assert.True(t, a.IsParallelTo(b))
	})

	t.Run("zero normal parallel to everything", func(t *testing.T) {
		z := MustParse([]string{"0", "0"}, "1")
		assert.True(t, z.IsParallelTo(l1))
		assert.True(t, l1.IsParallelTo(z))
	})
}

func TestEqual(t *testing.T) {
	t.Run("reflexive and symmetric", func(t *testing.T) {
		l := MustParse([]string{"10.115", "7.09"}, "0.1")
		m := MustParse([]string{"10.115", "7.09"}, "0.1")

		assert.True(t, l.Equal(l))
		assert.True(t, l.Equal(m))
		assert.True(t, m.Equal(l))
	})

	t.Run("same line, different representation", func(t *testing.T) {
		l := MustParse([]string{"1", "1"}, "1")
		m := MustParse([]string{"2", "2"}, "2")
		n := MustParse([]string{"-1", "-1"}, "-1")

		assert.True(t, l.Equal(m))
		assert.True(t, m.Equal(l))
		assert.True(t, l.Equal(n))
	})

	t.Run("parallel but distinct", func(t *testing.T) {
		l := MustParse([]string{"10.115", "7.09"}, "0.1")
		m := MustParse([]string{"10.115", "7.09"}, "3.025")

		assert.False(t, l.Equal(m))
	})

	t.Run("both normals zero", func(t *testing.T) {
		a := MustParse([]string{"0", "0"}, "5")
		b := MustParse([]string{"0", "0"}, "5.0000000000000001")
		c := MustParse([]string{"0", "0"}, "6")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("one normal zero is never equal", func(t *testing.T) {
		z := MustParse([]string{"0", "0"}, "5")
		l := MustParse([]string{"1", "0"}, "5")

		assert.False(t, z.Equal(l))
		assert.False(t, l.Equal(z))
	})

	t.Run("coordinates below tolerance, magnitude above", func(t *testing.T) {
		// Each coordinate is below 1e-15 but the magnitude (~1.27e-15) is
		// not, so the normal is not zero yet no base point exists.
		l := MustParse([]string{"9e-16", "9e-16"}, "1")
		m := MustParse([]string{"9e-16", "9e-16"}, "2")
		n := MustParse([]string{"1", "1"}, "1")

		_, ok := l.BasePoint()
		require.False(t, ok)
		require.False(t, l.NormalVector().IsZero())

		assert.False(t, l.Equal(m))
		assert.False(t, l.Equal(l))
		assert.False(t, l.Equal(n))
		assert.False(t, n.Equal(l))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, MustParse([]string{"1", "0"}, "0").Equal(nil))
	})
}

func TestIntersection(t *testing.T) {
	t.Run("parallel distinct lines do not intersect", func(t *testing.T) {
		l1 := MustParse([]string{"10.115", "7.09"}, "0.1")
		l2 := MustParse([]string{"10.115", "7.09"}, "3.025")

		res := l1.Intersection(l2)
		assert.Equal(t, IntersectionNone, res.Kind)
		assert.Nil(t, res.Point)
		assert.Nil(t, res.Line)
	})

	t.Run("general case solves the 2x2 system", func(t *testing.T) {
		l3 := MustParse([]string{"7.204", "3.182"}, "8.68")
		l4 := MustParse([]string{"8.172", "4.114"}, "9.883")

		res := l3.Intersection(l4)
		require.Equal(t, IntersectionPoint, res.Kind)
		require.NotNil(t, res.Point)

		round3 := func(d *apd.Decimal) string {
			var q apd.Decimal
			_, _ = decmath.Context(0).Quantize(&q, d, -3)
			return q.Text('f')
		}
		assert.Equal(t, "1.173", round3(res.Point.At(0)))
		assert.Equal(t, "0.073", round3(res.Point.At(1)))

		// The point satisfies both line equations within tolerance.
		for _, l := range []*Line{l3, l4} {
			d, err := l.NormalVector().Dot(res.Point)
			require.NoError(t, err)

			residual := decmath.Sub(decmath.Context(0), d, l.ConstantTerm())
			assert.True(t, decmath.WithinTolerance(residual, l.Tolerance()))
		}
	})

	t.Run("axes cross at the origin", func(t *testing.T) {
		xAxis := MustParse([]string{"0", "1"}, "0")
		yAxis := MustParse([]string{"1", "0"}, "0")

		res := xAxis.Intersection(yAxis)
		require.Equal(t, IntersectionPoint, res.Kind)
		assert.True(t, res.Point.IsZero())
	})

	t.Run("a line intersected with itself is coincident", func(t *testing.T) {
		l := MustParse([]string{"1.773", "8.343"}, "9.525")

		res := l.Intersection(l)
		require.Equal(t, IntersectionCoincident, res.Kind)
		assert.Same(t, l, res.Line)
		assert.Nil(t, res.Point)
	})

	t.Run("absent base points yield no intersection", func(t *testing.T) {
		l := MustParse([]string{"9e-16", "9e-16"}, "1")
		m := MustParse([]string{"9e-16", "9e-16"}, "2")

		res := l.Intersection(m)
		assert.Equal(t, IntersectionNone, res.Kind)
		assert.Nil(t, res.Point)
		assert.Nil(t, res.Line)
	})

	t.Run("coincident under different representation", func(t *testing.T) {
		l := MustParse([]string{"1", "1"}, "1")
		m := MustParse([]string{"2", "2"}, "2")

		res := l.Intersection(m)
		require.Equal(t, IntersectionCoincident, res.Kind)
		assert.Same(t, l, res.Line)
	})
}

func TestIntersectionKindString(t *testing.T) {
	assert.Equal(t, "None", IntersectionNone.String())
	assert.Equal(t, "Point", IntersectionPoint.String())
	assert.Equal(t, "Coincident", IntersectionCoincident.String())
	assert.Equal(t, "Unknown(42)", IntersectionKind(42).String())
}

func TestToleranceOption(t *testing.T) {
	// With a coarse tolerance the normal counts as zero and the base point
	// disappears.
	l, err := Parse([]string{"0.05", "0.05"}, "1", WithTolerance(decmath.MustParse("0.1")))
	require.NoError(t, err)

	_, ok := l.BasePoint()
	assert.False(t, ok)
	_, err = l.FirstNonzeroIndex()
	assert.ErrorIs(t, err, ErrNoNonzeroElements)
}

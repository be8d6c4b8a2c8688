package pipeline_test

import (
	"math"
	"testing"

	"github.com/aretw0/logos/internal/pipeline"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestIngest(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, domain.Delta0, pipeline.Ingest(""))
	})

	t.Run("SingleCharacter", func(t *testing.T) {
		assert.Equal(t, domain.Delta0+65, pipeline.Ingest("A"))
	})

	t.Run("ExponentCycles", func(t *testing.T) {
		// Positions 0 and 8 share the weight Phi^0.
		got := pipeline.Ingest("AAAAAAAAA")
		weights := []float64{
			1, 1.618033988749895, 2.618033988749895, 4.23606797749979,
			6.854101966249686, 11.090169943749476, 17.944271909999163, 29.03444185374864,
			1,
		}
		want := 0.0031056200151418573
		for _, w := range weights {
			want += 65 * w
		}
		assert.Equal(t, want, got)
	})

	t.Run("CodePoints", func(t *testing.T) {
		// One rune, not two bytes.
		assert.Equal(t, domain.Delta0+float64('é'), pipeline.Ingest("é"))
		assert.Equal(t, domain.Delta0+float64(0x1F600), pipeline.Ingest("\U0001F600"))
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		assert.Equal(t, domain.Delta0+float64('\uFFFD'), pipeline.Ingest("\xff"))
	})
}

func TestStabilize(t *testing.T) {
	v := domain.Delta0 + 65
	want := (v*v/10 + math.Sqrt(v+domain.Delta0)*10) / 2
	assert.Equal(t, want, pipeline.Stabilize(v))
	assert.InDelta(t, 251.58340173159723, pipeline.Stabilize(v), 1e-9)

	t.Run("DomainViolation", func(t *testing.T) {
		assert.True(t, math.IsNaN(pipeline.Stabilize(-1)))
		assert.False(t, math.IsNaN(pipeline.Stabilize(-domain.Delta0)))
	})

	t.Run("Overflow", func(t *testing.T) {
		assert.True(t, math.IsInf(pipeline.Stabilize(1e200), 1))
	})
}

func TestDetect_Bounded(t *testing.T) {
	values := []float64{0, 1, -1, 3.5, 11, 251.58, -4096.25, 1e6, -7.77e9, 1e15, math.MaxFloat64}
	for _, v := range values {
		g := pipeline.Detect(v)
		for _, m := range []float64{g.Triangle, g.Circle, g.Linear} {
			assert.GreaterOrEqual(t, m, 0.0, "v=%v", v)
			assert.LessOrEqual(t, m, 1.0, "v=%v", v)
		}
	}

	g := pipeline.Detect(math.NaN())
	assert.True(t, math.IsNaN(g.Triangle))
	assert.True(t, math.IsNaN(g.Circle))
	assert.True(t, math.IsNaN(g.Linear))
}

func TestPersist(t *testing.T) {
	geo := domain.Geometry{Triangle: 1, Circle: 1}
	v := 333.0
	got := pipeline.Persist(v, geo)
	want := v - v*2/(333+domain.Delta0) + domain.Delta0
	assert.Equal(t, want, got)

	// Correction is bounded by |v| * 2 / Verdict.
	for _, v := range []float64{1, -50, 1e4, 2.5e8} {
		correction := math.Abs(pipeline.Persist(v, geo) - domain.Delta0 - v)
		assert.LessOrEqual(t, correction, math.Abs(v)*2/domain.Verdict*(1+1e-12))
	}

	assert.Equal(t, domain.Delta0, pipeline.Persist(0, geo))
}

func TestAlign_Remainder(t *testing.T) {
	offset := domain.Linearity / domain.Phi
	values := []float64{0, 0.5, 4.3, 7, 13.99, 250.2490696622738, 12345.678, 999999.5}
	for _, v := range values {
		got := pipeline.Align(v)
		tol := 1e-9 * math.Max(1, math.Abs(v))
		assert.InDelta(t, offset, math.Mod(got, domain.Linearity), tol, "v=%v", v)
		assert.InDelta(t, v-math.Mod(v, domain.Linearity), got-offset, tol, "v=%v", v)
	}

	t.Run("NegativeKeepsTruncatedMultiple", func(t *testing.T) {
		got := pipeline.Align(-10)
		assert.InDelta(t, -7+offset, got, 1e-12)
		assert.InDelta(t, offset-domain.Linearity, math.Mod(got, domain.Linearity), 1e-12)
	})

	t.Run("NonFinite", func(t *testing.T) {
		assert.True(t, math.IsNaN(pipeline.Align(math.NaN())))
		assert.True(t, math.IsNaN(pipeline.Align(math.Inf(1))))
	})
}

func TestCertify(t *testing.T) {
	v := 249.32623792124926
	want := (math.Mod(v*3, 333) + math.Mod(v/3, 333)) / 2
	assert.Equal(t, want, pipeline.Certify(v))
	assert.InDelta(t, 82.54372986874878, pipeline.Certify(v), 1e-9)

	for _, v := range []float64{-1e6, -5, 0, 5, 1e6, 1e12} {
		assert.Less(t, math.Abs(pipeline.Certify(v)), domain.Verdict)
	}
}

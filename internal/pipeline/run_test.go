package pipeline_test

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/aretw0/logos/internal/pipeline"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reference struct {
	input    string
	mass     string
	geometry domain.Geometry
	aligned  string
	seal     string
}

// Values computed with IEEE-754 doubles by an independent implementation.
var references = []reference{
	{
		input:    "",
		mass:     "0.0031",
		geometry: domain.Geometry{Triangle: 0.03581575523582344, Circle: 0.9987871094755765, Linear: 0.056234550779226816},
		aligned:  "4.32623792124926342950",
		seal:     "7.210396535415",
	},
	{
		input:    "A",
		mass:     "65.0031",
		geometry: domain.Geometry{Triangle: 0.7707833273042837, Circle: 0.9994880859034447, Linear: 1},
		aligned:  "249.32623792124925898861",
		seal:     "82.543729868749",
	},
	{
		input:    "hello, world",
		mass:     "7287.5660",
		geometry: domain.Geometry{Triangle: 0.7112191726060955, Circle: 0.7678977110995001, Linear: 1},
		aligned:  "2644065.32623792113736271858",
		seal:     "186.543729868776",
	},
	{
		input:    "CRISTIAN_POPESCU_GENOMIC_REWRITE_2026",
		mass:     "23306.8089",
		geometry: domain.Geometry{Triangle: 0.6898951160942728, Circle: 0.9913992035210052, Linear: 1},
		aligned:  "27024001.32623792067170143127",
		seal:     "87.210396536626",
	},
	{
		// Long inputs push Stabilization past 1e10, where a one-ULP error in
		// the Ingestion weights reaches the aligned output.
		input:    strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20),
		mass:     "769795.6741",
		geometry: domain.Geometry{Triangle: 0.039226462377474854, Circle: 0.6679479003567882, Linear: 1},
		aligned:  "29566351861.32623672485351562500",
		seal:     "181.710396766663",
	},
	{
		input:    strings.Repeat("LOGOS", 200),
		mass:     "721632.6829",
		geometry: domain.Geometry{Triangle: 0.9912010982262658, Circle: 0.3954075985768303, Linear: 1},
		aligned:  "25929271022.32623672485351562500",
		seal:     "80.877062797546",
	},
	{
		input:    strings.Repeat("0123456789abcdef", 100),
		mass:     "1136307.1674",
		geometry: domain.Geometry{Triangle: 0.9771672956228388, Circle: 0.4712797393811049, Linear: 1},
		aligned:  "64278892136.32624053955078125000",
		seal:     "119.377071380615",
	},
}

// assertWithinULP fails unless got is want or one of its two neighbours.
func assertWithinULP(t *testing.T, want, got float64, field string) {
	t.Helper()
	lo, hi := math.Nextafter(want, math.Inf(-1)), math.Nextafter(want, math.Inf(1))
	assert.True(t, got >= lo && got <= hi, "%s: want %v (±1 ULP), got %v", field, want, got)
}

func TestRun_References(t *testing.T) {
	for _, ref := range references {
		name := ref.input
		if len(name) > 40 {
			name = name[:40]
		}
		t.Run(name, func(t *testing.T) {
			res := pipeline.Assemble(pipeline.Run(ref.input))

			assert.Equal(t, domain.Signature, res.Signature)
			assert.Equal(t, ref.mass, res.InputMass)
			assertWithinULP(t, ref.geometry.Triangle, res.GeometricDrift.Triangle, "triangle")
			assertWithinULP(t, ref.geometry.Circle, res.GeometricDrift.Circle, "circle")
			assertWithinULP(t, ref.geometry.Linear, res.GeometricDrift.Linear, "linear")
			assert.Equal(t, ref.aligned, res.AlignedOutput)
			assert.Equal(t, ref.seal, res.IntegritySeal)
			assert.Equal(t, domain.StatusNaturalness, res.Status)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	for _, ref := range references {
		a := pipeline.Run(ref.input)
		b := pipeline.Run(ref.input)
		assert.Equal(t, math.Float64bits(a.Mass), math.Float64bits(b.Mass))
		assert.Equal(t, math.Float64bits(a.Aligned), math.Float64bits(b.Aligned))
		assert.Equal(t, math.Float64bits(a.Seal), math.Float64bits(b.Seal))
		assert.Equal(t, a, b)
	}
}

func TestRun_MatchesStages(t *testing.T) {
	text := "Linear path"
	tr := pipeline.Run(text)

	v0 := pipeline.Ingest(text)
	v1 := pipeline.Stabilize(v0)
	geo := pipeline.Detect(v1)
	v2 := pipeline.Persist(v1, geo)
	v3 := pipeline.Align(v2)

	assert.Equal(t, v0, tr.Mass)
	assert.Equal(t, v1, tr.Stabilized)
	assert.Equal(t, geo, tr.Geometry)
	assert.Equal(t, v2, tr.Persisted)
	assert.Equal(t, v3, tr.Aligned)
	assert.Equal(t, pipeline.Certify(v3), tr.Seal)
	assert.Equal(t, v3, pipeline.AlignSequence(text))
}

func TestRun_Observers(t *testing.T) {
	var stages []domain.Stage
	var detected *domain.Geometry

	tr := pipeline.Run("A", func(stage domain.Stage, value float64, geo *domain.Geometry) {
		stages = append(stages, stage)
		if geo != nil {
			detected = geo
		}
	}, nil)

	assert.Equal(t, domain.Stages, stages)
	require.NotNil(t, detected)
	assert.Equal(t, tr.Geometry, *detected)
}

func TestAssemble_NonFinite(t *testing.T) {
	v1 := pipeline.Stabilize(-1)
	geo := pipeline.Detect(v1)
	v3 := pipeline.Align(pipeline.Persist(v1, geo))
	res := pipeline.Assemble(domain.Trace{
		Mass:       -1,
		Stabilized: v1,
		Geometry:   geo,
		Aligned:    v3,
		Seal:       pipeline.Certify(v3),
	})

	assert.Equal(t, "-1.0000", res.InputMass)
	assert.Equal(t, "NaN", res.AlignedOutput)
	assert.Equal(t, "NaN", res.IntegritySeal)
	assert.True(t, math.IsNaN(res.GeometricDrift.Circle))
	assert.Equal(t, domain.Signature, res.Signature)
	assert.Equal(t, domain.StatusNaturalness, res.Status)
}

func TestFormatFixed(t *testing.T) {
	four := regexp.MustCompile(`^-?\d+\.\d{4}$`)
	twenty := regexp.MustCompile(`^-?\d+\.\d{20}$`)
	twelve := regexp.MustCompile(`^-?\d+\.\d{12}$`)

	for _, v := range []float64{0, 1, -1, 0.00001, -123.456789, 1e21, -3.3e25, 7.0 / domain.Phi} {
		assert.Regexp(t, four, pipeline.FormatFixed(v, domain.InputMassPrecision))
		assert.Regexp(t, twenty, pipeline.FormatFixed(v, domain.AlignedPrecision))
		assert.Regexp(t, twelve, pipeline.FormatFixed(v, domain.SealPrecision))
	}

	assert.Equal(t, "0.0000", pipeline.FormatFixed(math.Copysign(0, -1), 4))
	assert.Equal(t, "1000000000000000000000.0000", pipeline.FormatFixed(1e21, 4))
	assert.Equal(t, "NaN", pipeline.FormatFixed(math.NaN(), 4))
	assert.Equal(t, "Infinity", pipeline.FormatFixed(math.Inf(1), 12))
	assert.Equal(t, "-Infinity", pipeline.FormatFixed(math.Inf(-1), 20))
}

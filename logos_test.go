package logos_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/pkg/adapters/memory"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_ReferenceWorkflow(t *testing.T) {
	res := logos.Process("CRISTIAN_POPESCU_GENOMIC_REWRITE_2026")

	assert.Equal(t, "LOGOS_DUAL_V1_SUPREME", res.Signature)
	assert.Equal(t, "23306.8089", res.InputMass)
	// One ULP in [0.5, 1) is 2^-53.
	assert.InDelta(t, 0.6898951160942728, res.GeometricDrift.Triangle, 0x1p-53)
	assert.InDelta(t, 0.9913992035210052, res.GeometricDrift.Circle, 0x1p-53)
	assert.Equal(t, 1.0, res.GeometricDrift.Linear)
	assert.Equal(t, "27024001.32623792067170143127", res.AlignedOutput)
	assert.Equal(t, "87.210396536626", res.IntegritySeal)
	assert.Equal(t, "NATURALNESS_ACHIEVED", res.Status)

	assert.Equal(t, res, logos.Process("CRISTIAN_POPESCU_GENOMIC_REWRITE_2026"))
}

func TestProcess_LongReference(t *testing.T) {
	res := logos.Process(strings.Repeat("0123456789abcdef", 100))

	assert.Equal(t, "1136307.1674", res.InputMass)
	assert.Equal(t, "64278892136.32624053955078125000", res.AlignedOutput)
	assert.Equal(t, "119.377071380615", res.IntegritySeal)
}

func TestProcess_Empty(t *testing.T) {
	tr := logos.Trace("")
	assert.Equal(t, 0.0031056200151418573, tr.Mass)
	assert.NoError(t, tr.Err())

	res := logos.Process("")
	assert.Equal(t, "0.0031", res.InputMass)
	assert.Equal(t, "4.32623792124926342950", res.AlignedOutput)
}

func TestProcess_LongInput(t *testing.T) {
	text := strings.Repeat("\U0010FFFF", 100000)
	res := logos.Process(text)

	assert.Equal(t, domain.StatusNaturalness, res.Status)
	assert.Regexp(t, `^\d+\.\d{4}$`, res.InputMass)
	assert.Regexp(t, `^\d+\.\d{20}$`, res.AlignedOutput)
	assert.NoError(t, logos.Trace(text).Err())
}

func TestEngine_MatchesPackageLevel(t *testing.T) {
	eng := logos.New()
	for _, in := range []string{"", "A", "hello, world"} {
		assert.Equal(t, logos.Process(in), eng.Process(context.Background(), in))
		assert.Equal(t, logos.Trace(in), eng.Trace(context.Background(), in))
	}
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var stages []domain.Stage
	var runs []*domain.RunEvent

	hooks := domain.LifecycleHooks{
		OnStage: func(ctx context.Context, e *domain.StageEvent) {
			stages = append(stages, e.Stage)
			if e.Stage == domain.StageDetect {
				assert.NotNil(t, e.Geometry)
			}
		},
		OnComplete: func(ctx context.Context, e *domain.RunEvent) {
			runs = append(runs, e)
		},
	}

	eng := logos.New(logos.WithLifecycleHooks(hooks), logos.WithStore(memory.NewStore()))
	ctx := context.Background()

	first := eng.Process(ctx, "A")
	second := eng.Process(ctx, "A")

	assert.Equal(t, first, second)
	assert.Equal(t, domain.Stages, stages, "cached run must not replay stages")
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Cached)
	assert.True(t, runs[1].Cached)
	assert.Equal(t, 1, runs[0].InputLen)
	assert.NoError(t, runs[0].Err)
}

func TestEngine_StoreIsUsed(t *testing.T) {
	store := memory.NewStore()
	eng := logos.New(logos.WithStore(store))
	ctx := context.Background()

	res := eng.Process(ctx, "A")

	cached, err := store.Get(ctx, logos.CacheKey("A"))
	require.NoError(t, err)
	assert.Equal(t, res, cached)
}

type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (f *failingStore) Put(ctx context.Context, key string, result domain.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("disk on fire")
}

func (f *failingStore) Get(ctx context.Context, key string) (domain.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return domain.Result{}, errors.New("connection refused")
}

func (f *failingStore) Delete(ctx context.Context, key string) error { return nil }

func TestEngine_StoreFailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	store := &failingStore{}

	eng := logos.New(logos.WithStore(store), logos.WithLogger(logger))
	res := eng.Process(context.Background(), "A")

	assert.Equal(t, logos.Process("A"), res)
	assert.Equal(t, 2, store.calls)
	assert.Contains(t, buf.String(), "result store lookup failed")
	assert.Contains(t, buf.String(), "result store write failed")
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", logos.CacheKey(""))
	assert.NotEqual(t, logos.CacheKey("A"), logos.CacheKey("B"))
	assert.Len(t, logos.CacheKey("A"), 64)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, domain.Constants(), logos.Constants())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(logos.Version))
}

package ports

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/aretw0/logos/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	result := domain.Result{
		Signature:      domain.Signature,
		InputMass:      "65.0031",
		GeometricDrift: domain.Geometry{Triangle: 0.7707833273042837, Circle: 0.9994880859034447, Linear: 1},
		AlignedOutput:  "249.32623792124925898861",
		IntegritySeal:  "82.543729868749",
		Status:         domain.StatusNaturalness,
	}

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, key, result)
		require.NoError(t, err, "Put should not return error")

		loaded, err := store.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, result, loaded)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("Non-Finite Geometry", func(t *testing.T) {
		degenerate := result
		degenerate.GeometricDrift = domain.Geometry{Triangle: math.NaN(), Circle: math.NaN(), Linear: 1}
		degenerate.AlignedOutput = "NaN"
		degenerate.IntegritySeal = "NaN"

		require.NoError(t, store.Put(ctx, key+"-nan", degenerate))
		defer func() { _ = store.Delete(ctx, key+"-nan") }()

		loaded, err := store.Get(ctx, key+"-nan")
		require.NoError(t, err)
		assert.True(t, math.IsNaN(loaded.GeometricDrift.Triangle))
		assert.True(t, math.IsNaN(loaded.GeometricDrift.Circle))
		assert.Equal(t, "NaN", loaded.AlignedOutput)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, result))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrResultNotFound, "Get after Delete should return ErrResultNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting a missing key should not fail")
	})
}

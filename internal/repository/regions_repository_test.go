package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NZWalks-API/internal/domain/model"
)

func TestRegionsRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	code := "STL"
	created, err := f.regions.Add(ctx, &model.Region{ID: "client-id", Name: "Southland", Code: &code})
	require.NoError(t, err)
	assert.NotEqual(t, "client-id", created.ID)

	t.Run("取得", func(t *testing.T) {
		got, err := f.regions.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Southland", got.Name)
		require.NotNil(t, got.Code)
		assert.Equal(t, "STL", *got.Code)
	})

	t.Run("更新", func(t *testing.T) {
		image := "https://example.com/southland.png"
		updated, err := f.regions.Update(ctx, created.ID, &model.Region{Name: "Southland", Code: &code, RegionImageURL: &image})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		require.NotNil(t, updated.RegionImageURL)
		assert.Equal(t, image, *updated.RegionImageURL)
	})

	t.Run("一覧", func(t *testing.T) {
		all, err := f.regions.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, created.ID, all[0].ID)
	})

	t.Run("削除は冪等", func(t *testing.T) {
		_, err := f.regions.Delete(ctx, created.ID)
		require.NoError(t, err)
		_, err = f.regions.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = f.regions.Update(ctx, created.ID, &model.Region{Name: "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestWalkDifficultiesRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.difficulties.Add(ctx, &model.WalkDifficulty{ID: "client-id", Code: "Medium"})
	require.NoError(t, err)
	assert.NotEqual(t, "client-id", created.ID)

	updated, err := f.difficulties.Update(ctx, created.ID, &model.WalkDifficulty{ID: "other", Code: "Moderate"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Moderate", updated.Code)

	got, err := f.difficulties.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	all, err := f.difficulties.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = f.difficulties.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// 検証なしでもそのまま保存される
	blank, err := f.difficulties.Add(ctx, &model.WalkDifficulty{Code: "   "})
	require.NoError(t, err)
	assert.Equal(t, "   ", blank.Code)
}

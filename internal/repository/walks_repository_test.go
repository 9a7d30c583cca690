package repository

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/store"
)

type fixture struct {
	regions      *StoreRegionsRepository
	difficulties *StoreWalkDifficultiesRepository
	walks        *StoreWalksRepository
	logs         *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := store.NewMemoryStore()
	logs := &bytes.Buffer{}
	return fixture{
		regions:      NewStoreRegionsRepository(s).(*StoreRegionsRepository),
		difficulties: NewStoreWalkDifficultiesRepository(s).(*StoreWalkDifficultiesRepository),
		walks:        NewStoreWalksRepository(s, zerolog.New(logs)).(*StoreWalksRepository),
		logs:         logs,
	}
}

// seedMilford Fiordland / Hard / Milford Track を作成
func seedMilford(t *testing.T, f fixture) (*model.Region, *model.WalkDifficulty, *model.Walk) {
	t.Helper()
	ctx := context.Background()

	r1, err := f.regions.Add(ctx, &model.Region{Name: "Fiordland"})
	require.NoError(t, err)
	d1, err := f.difficulties.Add(ctx, &model.WalkDifficulty{Code: "Hard"})
	require.NoError(t, err)
	w1, err := f.walks.Add(ctx, &model.Walk{
		Name:             "Milford Track",
		Length:           53.5,
		RegionID:         r1.ID,
		WalkDifficultyID: d1.ID,
	})
	require.NoError(t, err)
	return r1, d1, w1
}

func TestWalksRepository_MilfordTrack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1, d1, w1 := seedMilford(t, f)

	t.Run("Addは関連を解決せずに返す", func(t *testing.T) {
		assert.Nil(t, w1.Region)
		assert.Nil(t, w1.WalkDifficulty)
		assert.Equal(t, r1.ID, w1.RegionID)
		assert.Equal(t, d1.ID, w1.WalkDifficultyID)
	})

	t.Run("GetByIDは関連を解決する", func(t *testing.T) {
		got, err := f.walks.GetByID(ctx, w1.ID)
		require.NoError(t, err)

		assert.Equal(t, "Milford Track", got.Name)
		assert.Equal(t, 53.5, got.Length)
		require.NotNil(t, got.Region)
		require.NotNil(t, got.WalkDifficulty)
		assert.Equal(t, *r1, *got.Region)
		assert.Equal(t, *d1, *got.WalkDifficulty)
		assert.Empty(t, got.DanglingReferences())
	})

	t.Run("関連先の現在の値を返す", func(t *testing.T) {
		_, err := f.regions.Update(ctx, r1.ID, &model.Region{Name: "Fiordland National Park"})
		require.NoError(t, err)

		got, err := f.walks.GetByID(ctx, w1.ID)
		require.NoError(t, err)
		assert.Equal(t, "Fiordland National Park", got.Region.Name)
	})

	t.Run("難易度を削除しても読み取りは失敗しない", func(t *testing.T) {
		_, err := f.difficulties.Delete(ctx, d1.ID)
		require.NoError(t, err)

		got, err := f.walks.GetByID(ctx, w1.ID)
		require.NoError(t, err)
		assert.Nil(t, got.WalkDifficulty)
		assert.Equal(t, d1.ID, got.WalkDifficultyID)
		require.NotNil(t, got.Region)
		assert.Equal(t, []string{model.AssociationWalkDifficulty}, got.DanglingReferences())
		assert.Contains(t, f.logs.String(), "dangling")

		all, err := f.walks.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Nil(t, all[0].WalkDifficulty)
		assert.NotNil(t, all[0].Region)
	})
}

func TestWalksRepository_GetAllResolvesEveryWalk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r1, err := f.regions.Add(ctx, &model.Region{Name: "Fiordland"})
	require.NoError(t, err)
	r2, err := f.regions.Add(ctx, &model.Region{Name: "Tongariro"})
	require.NoError(t, err)
	easy, err := f.difficulties.Add(ctx, &model.WalkDifficulty{Code: "Easy"})
	require.NoError(t, err)
	hard, err := f.difficulties.Add(ctx, &model.WalkDifficulty{Code: "Hard"})
	require.NoError(t, err)

	expected := map[string][2]string{}
	for _, w := range []model.Walk{
		{Name: "Milford Track", Length: 53.5, RegionID: r1.ID, WalkDifficultyID: hard.ID},
		{Name: "Kepler Track", Length: 60, RegionID: r1.ID, WalkDifficultyID: easy.ID},
		{Name: "Tongariro Alpine Crossing", Length: 19.4, RegionID: r2.ID, WalkDifficultyID: hard.ID},
	} {
		created, err := f.walks.Add(ctx, &w)
		require.NoError(t, err)
		expected[created.ID] = [2]string{w.RegionID, w.WalkDifficultyID}
	}

	all, err := f.walks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for _, w := range all {
		ids, ok := expected[w.ID]
		require.True(t, ok)
		require.NotNil(t, w.Region)
		require.NotNil(t, w.WalkDifficulty)
		assert.Equal(t, ids[0], w.Region.ID)
		assert.Equal(t, ids[1], w.WalkDifficulty.ID)
	}
}

func TestWalksRepository_GetAllDoesNotShareAssociations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1, d1, _ := seedMilford(t, f)

	_, err := f.walks.Add(ctx, &model.Walk{
		Name: "Kepler Track", Length: 60, RegionID: r1.ID, WalkDifficultyID: d1.ID,
	})
	require.NoError(t, err)

	all, err := f.walks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Region)
	require.NotNil(t, all[1].Region)

	all[0].Region.Name = "mutated"
	all[0].WalkDifficulty.Code = "mutated"
	assert.Equal(t, "Fiordland", all[1].Region.Name)
	assert.Equal(t, "Hard", all[1].WalkDifficulty.Code)

	stored, err := f.regions.GetByID(ctx, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiordland", stored.Name)
}

func TestWalksRepository_RegionDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1, d1, w1 := seedMilford(t, f)

	_, err := f.regions.Delete(ctx, r1.ID)
	require.NoError(t, err)

	got, err := f.walks.GetByID(ctx, w1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Region)
	assert.Equal(t, r1.ID, got.RegionID)
	require.NotNil(t, got.WalkDifficulty)
	assert.Equal(t, d1.ID, got.WalkDifficulty.ID)
	assert.Equal(t, []string{model.AssociationRegion}, got.DanglingReferences())

	all, err := f.walks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Region)
	assert.Equal(t, r1.ID, all[0].RegionID)
	assert.NotNil(t, all[0].WalkDifficulty)
	assert.Equal(t, []string{model.AssociationRegion}, all[0].DanglingReferences())
	assert.Contains(t, f.logs.String(), "dangling")
}

func TestWalksRepository_GetAllEmpty(t *testing.T) {
	f := newFixture(t)

	all, err := f.walks.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWalksRepository_AddIgnoresClientIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := &model.Walk{ID: "client-id", Name: "Abel Tasman", Length: 60, RegionID: "r", WalkDifficultyID: "d"}
	created, err := f.walks.Add(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, "client-id", created.ID)
	assert.NotEmpty(t, created.ID)

	got, err := f.walks.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Length, got.Length)
	assert.Equal(t, input.RegionID, got.RegionID)
	assert.Equal(t, input.WalkDifficultyID, got.WalkDifficultyID)

	_, err = f.walks.GetByID(ctx, "client-id")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWalksRepository_UpdatePreservesIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1, d1, w1 := seedMilford(t, f)

	updated, err := f.walks.Update(ctx, w1.ID, &model.Walk{
		ID:               "ignored",
		Name:             "Milford Track",
		Length:           54,
		RegionID:         r1.ID,
		WalkDifficultyID: d1.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, w1.ID, updated.ID)
	assert.Equal(t, 54.0, updated.Length)
	// 長さだけ変えても地域参照は消えない
	assert.Equal(t, r1.ID, updated.RegionID)
	assert.Equal(t, d1.ID, updated.WalkDifficultyID)
	assert.Nil(t, updated.Region)

	got, err := f.walks.GetByID(ctx, w1.ID)
	require.NoError(t, err)
	assert.Equal(t, 54.0, got.Length)
	assert.NotNil(t, got.Region)
}

func TestWalksRepository_UnknownIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, w1 := seedMilford(t, f)

	_, err := f.walks.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.walks.Update(ctx, "missing", &model.Walk{Name: "x", Length: 1})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.walks.Delete(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// 何も変わっていない
	all, err := f.walks.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, w1.ID, all[0].ID)
	assert.Equal(t, "Milford Track", all[0].Name)
}

func TestWalksRepository_DeleteIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, w1 := seedMilford(t, f)

	removed, err := f.walks.Delete(ctx, w1.ID)
	require.NoError(t, err)
	assert.Equal(t, w1.ID, removed.ID)
	assert.Equal(t, "Milford Track", removed.Name)

	_, err = f.walks.Delete(ctx, w1.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWalksRepository_StorageFailure(t *testing.T) {
	f := newFixture(t)
	_, _, w1 := seedMilford(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.walks.GetByID(ctx, w1.ID)
	assert.ErrorIs(t, err, model.ErrStorage)
	assert.NotErrorIs(t, err, model.ErrNotFound)

	_, err = f.walks.GetAll(ctx)
	assert.ErrorIs(t, err, model.ErrStorage)
}

package repository_test

import (
	"context"
	"testing"

	"karaku/backend/internal/model"
	"karaku/backend/internal/repository"
	"karaku/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func rick() model.Character {
	return model.Character{ID: 1, Name: "Rick", Species: "Human", Gender: "Male", OriginName: "Earth", ImageURL: "u1"}
}

func TestCharacterRepository_InsertAndList(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertOrReplace(ctx, rick()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Character{rick()}, all)
}

func TestCharacterRepository_InsertOrReplace_Idempotent(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertOrReplace(ctx, rick()))
	require.NoError(t, repo.InsertOrReplace(ctx, rick()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, rick(), all[0])
}

func TestCharacterRepository_InsertOrReplace_LastWriteWins(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertOrReplace(ctx, rick()))
	pickle := rick()
	pickle.Name = "Pickle Rick"
	pickle.Species = "Pickle"
	require.NoError(t, repo.InsertOrReplace(ctx, pickle))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, pickle, got)
}

func TestCharacterRepository_DeleteByID_Idempotent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewCharacterRepository(conn)
	ctx := context.Background()

	testutil.SeedCharacter(t, conn, rick())
	morty := model.Character{ID: 2, Name: "Morty", Species: "Human", Gender: "Male", OriginName: "unknown", ImageURL: "u2"}
	testutil.SeedCharacter(t, conn, morty)

	require.NoError(t, repo.DeleteByID(ctx, 1))
	once, err := repo.ListAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, 1))
	twice, err := repo.ListAll(ctx)
	require.NoError(t, err)

	require.Equal(t, once, twice)
	require.Equal(t, []model.Character{morty}, twice)
}

func TestCharacterRepository_DeleteMissing(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.DeleteByID(context.Background(), 404))
}

func TestCharacterRepository_GetByID_NotFound(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCharacterRepository_ListAll_EmptyIsNotNil(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestCharacterRepository_ListAll_OrderedByID(t *testing.T) {
	repo := repository.NewCharacterRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		c := rick()
		c.ID = id
		require.NoError(t, repo.InsertOrReplace(ctx, c))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/pkg/apperror"
	"zeros.dev/launchpad/pkg/content"
)

func setupRepo(t *testing.T, users []entity.User) repository.UserRepository {
	t.Helper()
	store := content.NewStore(t.TempDir())
	if users != nil {
		require.NoError(t, content.WriteList(store, "users", users))
	}
	return repository.NewUserRepository(store)
}

func TestCreateThenFindByID(t *testing.T) {
	repo := setupRepo(t, nil)
	ctx := context.Background()

	user := &entity.User{
		Name:   "Ada Lovelace",
		Email:  "ada@zeros.dev",
		Role:   entity.RoleApprentice,
		Avatar: "/avatars/1.png",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, 1, user.ID)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, *user, *got)
}

func TestCreateAssignsNextID(t *testing.T) {
	repo := setupRepo(t, []entity.User{
		{ID: 3, Name: "A", Email: "a@zeros.dev", Role: entity.RoleApprentice},
		{ID: 7, Name: "B", Email: "b@zeros.dev", Role: entity.RoleScorer},
	})

	user := &entity.User{Name: "C", Email: "c@zeros.dev", Role: entity.RoleApprentice}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, 8, user.ID)
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	repo := setupRepo(t, []entity.User{
		{ID: 1, Name: "Ada", Email: "Ada@Zeros.dev", Role: entity.RoleApprentice},
	})

	got, err := repo.FindByEmail(context.Background(), "ada@zeros.DEV")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestDeleteMissingUserLeavesListUnchanged(t *testing.T) {
	repo := setupRepo(t, []entity.User{
		{ID: 1, Name: "Ada", Email: "ada@zeros.dev", Role: entity.RoleApprentice},
	})
	ctx := context.Background()

	err := repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteOrchestratorForbidden(t *testing.T) {
	repo := setupRepo(t, []entity.User{
		{ID: 1, Name: "Root", Email: "root@zeros.dev", Role: entity.RoleOrchestrator},
	})
	ctx := context.Background()

	err := repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateMissingUser(t *testing.T) {
	repo := setupRepo(t, nil)

	err := repo.Update(context.Background(), entity.User{ID: 9, Name: "Nobody"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

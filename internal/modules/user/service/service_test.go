package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zeros.dev/launchpad/internal/entity"
	"zeros.dev/launchpad/internal/modules/user/dto"
	"zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/internal/modules/user/service"
	"zeros.dev/launchpad/internal/session"
	"zeros.dev/launchpad/pkg/content"
)

func setup(t *testing.T) (service.AuthService, *session.Manager) {
	t.Helper()

	store := content.NewStore(t.TempDir())

	hashed, err := service.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, content.WriteList(store, "users", []entity.User{
		{ID: 1, Name: "Grace Hopper", Email: "grace@zeros.dev", Role: entity.RoleOrchestrator, Avatar: "/avatars/1.png", PasswordHash: hashed},
		{ID: 2, Name: "Ada Lovelace", Email: "ada@zeros.dev", Role: entity.RoleApprentice},
	}))

	sessions := session.NewManager("test-secret", time.Hour, false)
	return service.NewAuthService(repository.NewUserRepository(store), sessions), sessions
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, sessions := setup(t)

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "grace@zeros.dev", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Empty(t, resp.User.PasswordHash, "hash never leaves the service")

	user, err := sessions.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "grace@zeros.dev", user.Email)
	assert.Equal(t, entity.RoleOrchestrator, user.Role)
}

func TestLoginFailureMessageDoesNotLeak(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, dto.LoginInput{Email: "grace@zeros.dev", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, dto.LoginInput{Email: "nobody@zeros.dev", Password: "admin123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error(), "same message for both failure modes")
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Login(context.Background(), dto.LoginInput{Email: "GRACE@Zeros.Dev", Password: "admin123"})
	assert.NoError(t, err)
}

func TestCheckEmail(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	assert.NoError(t, svc.CheckEmail(ctx, "ada@zeros.dev"))
	assert.Error(t, svc.CheckEmail(ctx, "nobody@zeros.dev"))
}

func TestSetPasswordEnablesLogin(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	// Ada has no password yet.
	_, err := svc.Login(ctx, dto.LoginInput{Email: "ada@zeros.dev", Password: "secret1"})
	require.Error(t, err)

	require.NoError(t, svc.SetPassword(ctx, dto.SetPasswordInput{Email: "ada@zeros.dev", Password: "secret1"}))

	resp, err := svc.Login(ctx, dto.LoginInput{Email: "ada@zeros.dev", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleApprentice, resp.User.Role)
}

func TestParseRejectsForgedToken(t *testing.T) {
	_, sessions := setup(t)

	forger := session.NewManager("other-secret", time.Hour, false)
	token, err := forger.Issue(&entity.User{ID: 1, Name: "Mallory", Email: "mallory@zeros.dev", Role: entity.RoleOrchestrator})
	require.NoError(t, err)

	_, err = sessions.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	expired := session.NewManager("test-secret", -time.Minute, false)
	token, err := expired.Issue(&entity.User{ID: 1, Name: "Grace Hopper", Email: "grace@zeros.dev", Role: entity.RoleOrchestrator})
	require.NoError(t, err)

	verifier := session.NewManager("test-secret", time.Hour, false)
	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

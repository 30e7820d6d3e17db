package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/crypto"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/models"
)

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func newTestAuthService(repo store.UserRepository) *authService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey:  "0123456789abcdef",
		TokenIssuer:   "QuickNotes",
		TokenAudience: "QuickNotes",
		TokenDuration: 30 * time.Minute,
	}, logger.NewLogger("test")).(*authService)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice", registered.Username)

	// the stored value must be a bcrypt digest, never the plain password
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "s3cret", persisted.PasswordHash)
	assert.Empty(t, persisted.Password)

	hasher := crypto.NewPasswordHasher()
	assert.True(t, hasher.Verify(persisted.PasswordHash, "s3cret"))
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 1, Username: "Alice"}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_LostInsertRace(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	digest, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: "alice", PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	digest, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 7, Username: "alice", PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Username: "ghost", Password: "whatever"})
	// identical to the wrong-password outcome
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	user := models.User{UserID: 7, Username: "alice"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 7, Username: "alice"})
	require.NoError(t, err)

	verifying := NewAuthService(&mockUserRepository{}, config.Auth{
		TokenSignKey:  "another-sign-key",
		TokenIssuer:   "QuickNotes",
		TokenAudience: "QuickNotes",
		TokenDuration: 30 * time.Minute,
	}, logger.NewLogger("test"))

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

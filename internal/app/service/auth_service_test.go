package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(repo *mockUserRepo) (*AuthService, *security.TokenService) {
	tokens := security.NewTokenService([]byte("test-secret"), nil)
	return NewAuthService(repo, security.NewPasswordHasher(4), tokens, zap.NewNop()), tokens
}

func TestRegister_MissingFields(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)

	cases := []RegisterRequest{
		{Email: "a@x.io", Password: "pw", Role: "hacker"},
		{Username: "alice", Password: "pw", Role: "hacker"},
		{Username: "alice", Email: "a@x.io", Role: "hacker"},
		{Username: "alice", Email: "a@x.io", Password: "pw"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		require.ErrorIs(t, err, common.ErrValidation)
		assert.Equal(t, MsgMissingFields, common.ClientMessage(err))
	}
	repo.AssertNotCalled(t, "ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_InvalidRole(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "a", Email: "e", Password: "p", Role: "admin"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, MsgInvalidRole, common.ClientMessage(err))
}

func TestRegister_Duplicate(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "a@x.io").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw", Role: "hacker"})
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, MsgUserExists, common.ClientMessage(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_LostRaceIsConflict(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "a@x.io").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(common.WrapError(&pgconn.PgError{Code: "23505"}, common.ErrConflict, MsgUserExists))

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw", Role: "hacker"})
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, 409, common.HTTPStatusFromError(err))
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc, tokens := newAuthService(repo)
	repo.On("ExistsByUsernameOrEmail", mock.Anything, "acme", "hr@acme.io").Return(false, nil)

	var stored *model.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.User) }).
		Return(nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{Username: "acme", Email: "hr@acme.io", Password: "s3cret", Role: "company"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, model.PublicUser{ID: stored.ID, Username: "acme", Role: "company"}, resp.User)
	assert.NotEqual(t, "s3cret", stored.HashedPassword)
	assert.True(t, security.NewPasswordHasher(4).CheckPasswordHash("s3cret", stored.HashedPassword))

	p, err := tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, security.Principal{ID: stored.ID, Username: "acme", Role: "company"}, p)
}

func TestLogin_IdenticalMessageForUnknownUserAndWrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)

	hash, err := security.NewPasswordHasher(4).HashPassword("right")
	require.NoError(t, err)
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, common.ErrNotFound)
	repo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: "u-1", Username: "alice", Role: "hacker", HashedPassword: hash}, nil)

	_, errUnknown := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "right"})
	_, errWrong := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	require.ErrorIs(t, errUnknown, common.ErrUnauthorized)
	require.ErrorIs(t, errWrong, common.ErrUnauthorized)
	assert.Equal(t, MsgInvalidCredentials, common.ClientMessage(errUnknown))
	assert.Equal(t, common.ClientMessage(errUnknown), common.ClientMessage(errWrong))
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _ := newAuthService(new(mockUserRepo))

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, MsgMissingCredentials, common.ClientMessage(err))
}

func TestLogin_StorageFailureIsServerError(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newAuthService(repo)
	repo.On("FindByUsername", mock.Anything, "alice").Return(nil, fmt.Errorf("query: %w", errors.New("conn refused")))

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, 500, common.HTTPStatusFromError(err))
	assert.Equal(t, common.MsgServerError, common.ClientMessage(err))
}

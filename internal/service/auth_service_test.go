package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/RoyceAzure/rj/util/crypt"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testTokenKey    = "12345678901234567890123456789012"
	testRawPassword = "P@ssw0rd12345"
	testUserAccount = "royce"
	testUserEmail   = "royce@example.com"
)

type fakeUserStore struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*model.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetUserByAccount(ctx context.Context, account string) (*model.User, error) {
	for _, user := range f.users {
		if user.Account == account {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]*model.UserSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[uuid.UUID]*model.UserSession{}}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *model.UserSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*model.UserSession, error) {
	for _, session := range f.sessions {
		if session.RefreshToken == refreshToken {
			return session, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) ForceClearAllSessions(ctx context.Context) error {
	f.sessions = map[uuid.UUID]*model.UserSession{}
	return nil
}

func newTestAuthService(t *testing.T) (IAuthService, *fakeUserStore, *fakeSessionStore) {
	t.Helper()
	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](testTokenKey)
	require.NoError(t, err)

	userStore := newFakeUserStore()
	sessionStore := newFakeSessionStore()
	return NewAuthService(NewUserService(userStore), sessionStore, tokenMaker), userStore, sessionStore
}

func TestRegisterAndLogin(t *testing.T) {
	authService, userStore, sessionStore := newTestAuthService(t)
	ctx := context.Background()

	res, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)
	require.Equal(t, testUserAccount, res.User.Account)
	require.True(t, res.User.IsActive)
	require.False(t, res.User.IsAdmin)

	// 密碼不落明文
	require.NotEqual(t, testRawPassword, res.User.PasswordHash)
	require.Len(t, userStore.users, 1)
	// 註冊完直接有session
	require.Len(t, sessionStore.sessions, 1)

	loginRes, err := authService.Login(ctx, testUserAccount, testRawPassword)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, loginRes.User.ID)
	require.Len(t, sessionStore.sessions, 2)
}

func TestRegisterDuplicateAccount(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)

	_, err = authService.Register(ctx, testUserAccount, "other@example.com", testRawPassword)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, anaErr.Code)

	_, err = authService.Register(ctx, "otheraccount", testUserEmail, testRawPassword)
	require.Error(t, err)
	anaErr, ok = err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, anaErr.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	authService, _, _ := newTestAuthService(t)

	_, err := authService.Register(context.Background(), "", testUserEmail, testRawPassword)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.InvalidArgumentCode, anaErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	authService, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)

	_, err = authService.Login(ctx, testUserAccount, "Wr0ng@Password")
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthenticatedCode, anaErr.Code)
}

func TestLoginUnknownAccount(t *testing.T) {
	authService, _, _ := newTestAuthService(t)

	_, err := authService.Login(context.Background(), "nobody", testRawPassword)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthenticatedCode, anaErr.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	authService, userStore, _ := newTestAuthService(t)
	ctx := context.Background()

	res, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)

	userStore.users[res.User.ID].IsActive = false

	_, err = authService.Login(ctx, testUserAccount, testRawPassword)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthorizedCode, anaErr.Code)
}

func TestLogout(t *testing.T) {
	authService, _, sessionStore := newTestAuthService(t)
	ctx := context.Background()

	res, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)
	require.Len(t, sessionStore.sessions, 1)

	err = authService.Logout(ctx, res.RefreshToken)
	require.NoError(t, err)
	require.Empty(t, sessionStore.sessions)
}

func TestLogoutInvalidToken(t *testing.T) {
	authService, _, _ := newTestAuthService(t)

	err := authService.Logout(context.Background(), "garbage-token")
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthenticatedCode, anaErr.Code)
}

func TestLogoutOtherUsersSession(t *testing.T) {
	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](testTokenKey)
	require.NoError(t, err)

	userStore := newFakeUserStore()
	sessionStore := newFakeSessionStore()
	authService := NewAuthService(NewUserService(userStore), sessionStore, tokenMaker)
	ctx := context.Background()

	res, err := authService.Register(ctx, testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)

	// 偽造他人的refresh token去打同一個session store
	otherToken, _, err := tokenMaker.CreateToken("other@example.com", uuid.New(), time.Duration(constants.RefreshTokenDuration)*time.Hour)
	require.NoError(t, err)
	for _, session := range sessionStore.sessions {
		session.RefreshToken = otherToken
	}

	err = authService.Logout(ctx, otherToken)
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthorizedCode, anaErr.Code)
	require.Len(t, sessionStore.sessions, 1)
	_ = res
}

func TestMeWithoutPayload(t *testing.T) {
	authService, _, _ := newTestAuthService(t)

	_, err := authService.Me(context.Background())
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok)
	require.Equal(t, er.UnauthorizedCode, anaErr.Code)
}

func TestCreateUserHashesPassword(t *testing.T) {
	userStore := newFakeUserStore()
	userService := NewUserService(userStore)

	user, err := userService.CreateUser(context.Background(), testUserAccount, testUserEmail, testRawPassword)
	require.NoError(t, err)
	require.NotEqual(t, testRawPassword, user.PasswordHash)
	require.NoError(t, crypt.CheckPassword(testRawPassword, user.PasswordHash))
}

package service

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/RoyceAzure/rj/util/crypt"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ISessionStore 登入會話持久層介面
type ISessionStore interface {
	CreateSession(ctx context.Context, session *model.UserSession) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*model.UserSession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	ForceClearAllSessions(ctx context.Context) error
}

type IAuthService interface {
	// Register 建立帳號並直接登入  等同原站註冊後自動login
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 欄位或密碼不合法  帳號/email重複
	//   - er.InternalErrorCode 500: 內部處理錯誤
	Register(ctx context.Context, account, email, password string) (*model.LoginResponseModel, error)
	// Login 帳號密碼登入
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 帳號不存在或密碼錯誤
	//   - er.UnauthorizedCode 403: 用戶已停用
	//   - er.InternalErrorCode 500: 內部處理錯誤
	Login(ctx context.Context, account, password string) (*model.LoginResponseModel, error)
	// Logout 使用刷新令牌登出並撤銷用戶會話
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 刷新令牌無效或格式錯誤
	//   - er.UnauthorizedCode 403: 找不到對應的會話
	//   - er.InternalErrorCode 500: 刪除會話時發生內部錯誤
	Logout(ctx context.Context, refreshToken string) error
	// Me 取得當前登入user資訊
	// 錯誤:
	//   - er.UnauthorizedCode 403: 未授權
	Me(ctx context.Context) (*model.User, error)
}

type AuthService struct {
	userService  IUserService
	sessionStore ISessionStore
	tokenMaker   token.Maker[uuid.UUID]
}

func NewAuthService(userService IUserService, sessionStore ISessionStore, tokenMaker token.Maker[uuid.UUID]) IAuthService {
	if reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if reflect.ValueOf(sessionStore).IsNil() {
		panic("auth service initialization failed: sessionStore cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		userService:  userService,
		sessionStore: sessionStore,
		tokenMaker:   tokenMaker,
	}
}

func (a *AuthService) Register(ctx context.Context, account, email, password string) (*model.LoginResponseModel, error) {
	user, err := a.userService.CreateUser(ctx, account, email, password)
	if err != nil {
		return nil, err
	}

	// 註冊完直接登入
	return a.createdUserSession(ctx, user)
}

func (a *AuthService) Login(ctx context.Context, account, password string) (*model.LoginResponseModel, error) {
	user, err := a.userService.GetUserByAccount(ctx, account)
	if err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid account or password")
	}

	if err := crypt.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, er.New(er.UnauthenticatedCode, "invalid account or password")
	}

	if !user.IsActive {
		return nil, er.New(er.UnauthorizedCode, "user is not active")
	}

	return a.createdUserSession(ctx, user)
}

func (a *AuthService) Logout(ctx context.Context, refreshToken string) error {
	payload, err := a.tokenMaker.VertifyToken(refreshToken)
	if err != nil {
		return er.New(er.UnauthenticatedCode, "invalid refresh token")
	}

	session, err := a.sessionStore.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return er.New(er.UnauthorizedCode, "session not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	// 驗證會話屬於當前用戶
	if payload.UserId != session.UserID {
		return er.New(er.UnauthorizedCode, "unauthorized")
	}

	if err := a.sessionStore.DeleteSession(ctx, session.ID); err != nil {
		return er.New(er.InternalErrorCode, "failed to delete session")
	}

	return nil
}

func (a *AuthService) Me(ctx context.Context) (*model.User, error) {
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		return nil, er.New(er.UnauthorizedCode, "unauthorized")
	}

	user, err := a.userService.GetUserByID(ctx, payload.UserId)
	if err != nil {
		return nil, er.New(er.UnauthorizedCode, "unauthorized")
	}

	return user, nil
}

// createdUserSession 創建userSession
// 錯誤:
//   - er.InternalErrorCode 500: access token創建錯誤
//   - er.InternalErrorCode 500: refresh token創建錯誤
//   - er.InternalErrorCode 500: user session創建錯誤
func (a *AuthService) createdUserSession(ctx context.Context, user *model.User) (*model.LoginResponseModel, error) {
	accessToken, _, err := a.tokenMaker.CreateToken(user.Email, user.ID, time.Duration(constants.AccessTokenDuration)*time.Hour)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created accessToken failed")
	}

	refreshTokenDur := time.Duration(constants.RefreshTokenDuration) * time.Hour
	refreshToken, _, err := a.tokenMaker.CreateToken(user.Email, user.ID, refreshTokenDur)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created refreshToken failed")
	}

	err = a.sessionStore.CreateSession(ctx, &model.UserSession{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IsActive:     true,
		ExpiresAt:    time.Now().UTC().Add(refreshTokenDur),
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "created user session failed")
	}

	return &model.LoginResponseModel{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

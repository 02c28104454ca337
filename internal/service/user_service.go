package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/rj/util/crypt"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IUserStore 用戶持久層介面
type IUserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByAccount(ctx context.Context, account string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type IUserService interface {
	// CreateUser 建立帳號
	//
	// 錯誤:
	//   - er.InvalidArgumentCode 460: 帳號/email/密碼為空  或密碼強度不足
	//   - er.InvalidArgumentCode 460: 帳號或email已存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	CreateUser(ctx context.Context, account, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByAccount(ctx context.Context, account string) (*model.User, error)
}

type UserService struct {
	userStore IUserStore
}

func NewUserService(userStore IUserStore) IUserService {
	if userStore == nil {
		panic("user service initialization failed: userStore cannot be nil")
	}
	return &UserService{
		userStore: userStore,
	}
}

func (u *UserService) CreateUser(ctx context.Context, account, email, password string) (*model.User, error) {
	if account == "" || email == "" || password == "" {
		return nil, er.New(er.InvalidArgumentCode, "account, email and password are required")
	}

	err := crypt.ValidateStringPassword(password)
	if err != nil {
		return nil, er.New(er.InvalidArgumentCode, err.Error())
	}

	// 檢查帳號是否已存在
	if _, err := u.userStore.GetUserByAccount(ctx, account); err == nil {
		return nil, er.New(er.InvalidArgumentCode, "account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	// 檢查email是否已存在
	if _, err := u.userStore.GetUserByEmail(ctx, email); err == nil {
		return nil, er.New(er.InvalidArgumentCode, "email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	hashPassword, err := crypt.HashPassword(password)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "hash password failed")
	}

	user := &model.User{
		ID:           uuid.New(),
		Account:      account,
		Email:        email,
		PasswordHash: hashPassword,
		IsActive:     true,
	}
	if err := u.userStore.CreateUser(ctx, user); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return user, nil
}

func (u *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := u.userStore.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.DataNotExistsCode, err.Error())
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return user, nil
}

func (u *UserService) GetUserByAccount(ctx context.Context, account string) (*model.User, error) {
	user, err := u.userStore.GetUserByAccount(ctx, account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.DataNotExistsCode, err.Error())
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return user, nil
}

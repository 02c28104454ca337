package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary home
// @Tags core
// @Produce json
// @Success 200 {object} api.Response{data=string} "success"
// @Router / [get]
func (a *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	api.SuccessJSON(w, "storefront is running", nil)
}

// @Summary register
// @use create account and log the user in
// @Tags core
// @Accept json
// @Produce json
// @Param accountInfo body dto.RegisterDTO true "account, email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /register [post]
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Register(ctx, registerDTO.Account, registerDTO.Email, registerDTO.Password)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertLoginResponse(loginRes), nil)
}

// @Summary login
// @use account and password to login
// @Tags core
// @Accept json
// @Produce json
// @Param accountInfo body dto.LoginDTO true "account and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/login [post]
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()

	loginRes, err := a.authService.Login(ctx, loginDTO.Account, loginDTO.Password)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertLoginResponse(loginRes), nil)
}

// @Summary logout
// @use logout current login user  POST only
// @Tags core
// @Accept json
// @Produce json
// @Param refresh_token body dto.RefreshTokenDTO true "refresh token"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/logout [post]
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshTokenDTO dto.RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&refreshTokenDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return
	}

	ctx := r.Context()
	err := a.authService.Logout(ctx, refreshTokenDTO.RefreshToken)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary get current login user info
// @Tags core
// @Produce json
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Security     ApiKeyAuth
// @Router /auth/me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := a.authService.Me(ctx)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}
	if user == nil {
		err := er.New(er.UnauthenticatedCode, "user not found")
		api.ErrorJSON(w, int(er.UnauthenticatedCode), err, er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(*user), nil)
}

// convertUserModelToDTO 將 User 轉換為 UserDTO
func convertUserModelToDTO(user model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:      user.ID.String(),
		Account: user.Account,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

func convertLoginResponse(loginRes *model.LoginResponseModel) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		RefreshToken: dto.TokenInfo{
			Value:     loginRes.RefreshToken,
			ExpiresIn: int(constants.RefreshTokenDuration) * 3600,
		},
		User: convertUserModelToDTO(loginRes.User),
	}
}

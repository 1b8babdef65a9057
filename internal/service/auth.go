package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/auth"
	"github.com/ibeloyar/chawp-vendor/pgk/password"
	"golang.org/x/crypto/bcrypt"
)

var (
	unknownUserOnce sync.Once
	unknownUserHash string
)

// dummyHash - с ним сравнивается пароль неизвестного email, время ответа то же, что при неверном пароле
func dummyHash() string {
	unknownUserOnce.Do(func() {
		hash, err := password.HashPassword("chawp-vendor-unknown-user", bcrypt.DefaultCost)
		if err == nil {
			unknownUserHash = hash
		}
	})
	return unknownUserHash
}

// SignIn - вход вендора по email и паролю. Аккаунт без профиля вендора не пускаем.
func (s *Service) SignIn(ctx context.Context, input model.SignInDTO) (*model.SignInResult, *model.APIError) {
	if err := validateSignInDTO(input); err != nil {
		return nil, badRequest(err.Error())
	}

	user, err := s.storage.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			password.CheckPasswordHash(input.Password, dummyHash())
			return nil, &model.APIError{
				Code:    http.StatusUnauthorized,
				Message: model.ErrInvalidLoginOrPasswordMessage,
			}
		}
		s.lg.Errorf("get user by email error: %v", err)
		return nil, internalError()
	}

	if !password.CheckPasswordHash(input.Password, user.Password) {
		return nil, &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	vendor, err := s.storage.GetVendorByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, model.ErrVendorNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusForbidden,
				Message: model.ErrNoVendorProfileMessage,
			}
		}
		s.lg.Errorf("get vendor by user %s error: %v", user.ID, err)
		return nil, internalError()
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		UserID:   user.ID,
		VendorID: vendor.ID,
		Email:    user.Email,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		s.lg.Errorf("generate token error: %v", err)
		return nil, internalError()
	}

	return &model.SignInResult{
		Token:  token,
		User:   *user,
		Vendor: *vendor,
	}, nil
}

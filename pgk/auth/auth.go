package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

type tokenInfoKey struct{}

type Claims[T any] struct {
	jwt.RegisteredClaims
	TokenInfo T
}

// GenerateBearerToken - HS256 JWT с префиксом "Bearer "
func GenerateBearerToken[T any](input T, exp time.Duration, secret string) (string, error) {
	now := time.Now()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims[T]{
		TokenInfo: input,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return bearerPrefix + token, nil
}

func VerifyJWTBearerToken[T any](header, secret string) (*T, error) {
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return nil, jwt.ErrInvalidType
	}
	if raw == "" || strings.Contains(raw, " ") {
		return nil, jwt.ErrSignatureInvalid
	}

	claims := &Claims[T]{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.TokenInfo, nil
}

// AuthBearerMiddlewareInit - отклоняет запросы без валидного bearer токена,
// данные токена кладет в контекст запроса
func AuthBearerMiddlewareInit[T any](secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenInfo, err := VerifyJWTBearerToken[T](r.Header.Get("Authorization"), secret)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTokenInfo(r.Context(), tokenInfo)))
		})
	}
}

func WithTokenInfo[T any](ctx context.Context, info *T) context.Context {
	return context.WithValue(ctx, tokenInfoKey{}, info)
}

func GetTokenInfo[T any](r *http.Request) *T {
	tokenInfo, ok := r.Context().Value(tokenInfoKey{}).(*T)
	if !ok {
		return nil
	}

	return tokenInfo
}

// NewAuthenticatedRequest - httptest-запрос с данными токена в контексте
func NewAuthenticatedRequest[T any](method, target string, info *T, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(WithTokenInfo(req.Context(), info))
}

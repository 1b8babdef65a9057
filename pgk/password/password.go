package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordLen = 64

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = fmt.Errorf("password too long, max %d characters", maxPasswordLen)
	ErrPasswordGenerate = errors.New("password generate error")
)

func HashPassword(password string, passCost int) (string, error) {
	if password == "" {
		return "", ErrPasswordRequired
	}
	if len(password) > maxPasswordLen {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordGenerate, err)
	}

	return string(hash), nil
}

// CheckPasswordHash - совпадает ли пароль с bcrypt хешем
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// File: internal/service/authentication.go
package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"portfolio-api/internal/model"
)

// PasswordMode 決定密碼如何儲存與比對
type PasswordMode string

const (
	// PasswordPlain 明文儲存與比對，與既有資料相容 (不安全)
	PasswordPlain PasswordMode = "plain"
	// PasswordBcrypt 以 bcrypt 儲存與比對，切換前需遷移既有資料
	PasswordBcrypt PasswordMode = "bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

func ParsePasswordMode(s string) (PasswordMode, error) {
	switch m := PasswordMode(s); m {
	case PasswordPlain, PasswordBcrypt:
		return m, nil
	default:
		return "", fmt.Errorf("unknown password mode %q", s)
	}
}

// StoredPassword 回傳寫入資料庫的密碼值
func (m PasswordMode) StoredPassword(password string) (string, error) {
	if m == PasswordBcrypt {
		return HashPassword(password)
	}
	return password, nil
}

func (m PasswordMode) matches(stored, password string) bool {
	if m == PasswordBcrypt {
		return ComparePassword(stored, password) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// AuthenticateUser 在同名的使用者中尋找密碼相符者，找不到回傳 ErrInvalidCredentials
func AuthenticateUser(candidates []model.User, password string, mode PasswordMode) (*model.User, error) {
	for i := range candidates {
		if mode.matches(candidates[i].Password, password) {
			return &candidates[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

package encrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.DefaultCost = 10
const bcryptCost = bcrypt.DefaultCost

var (
	// ErrEmptyCode nothing to hash
	ErrEmptyCode = errors.New("code is empty")
	// ErrCodeMismatch code does not match the hash
	ErrCodeMismatch = errors.New("code does not match")
)

// HashCode 將 code 進行 bcrypt 加密, 用於設定檔中的管理員碼
func HashCode(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(hashed), nil
}

// CheckCode 驗證 code 是否匹配
func CheckCode(hashed, code string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code)); err != nil {
		return ErrCodeMismatch
	}
	return nil
}

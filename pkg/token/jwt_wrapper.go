package token

import "semicolon_service/pkg/config"

// 這個變數會在測試時被覆蓋
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper 讓 gate usecase test mock使用這個包裝函數
func GenerateJWTWrapper(role string) (string, error) {
	return GenerateJWTFunc(role, config.EnvConfig.Service)
}

// ParseJWTWrapper 讓 middleware test mock使用這個包裝函數
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}

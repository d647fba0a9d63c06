package errprocess

import (
	"fmt"

	"semicolon_service/pkg/logger"

	"go.uber.org/zap"
)

// Wrap log err with msg and return it wrapped, errors.Is still matches the cause
func Wrap(msg string, err error, fields ...zap.Field) error {
	logger.Log.Error(msg, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", msg, err)
}

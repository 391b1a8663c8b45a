package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
)

// 終了コード
const (
	ExitOK               = 0
	ExitInternal         = 1
	ExitUsage            = 2
	ExitNotFound         = 3
	ExitDuplicate        = 4
	ExitInvalidInput     = 5
	ExitCapacityExceeded = 6
)

// UsageError はコマンドの使い方の誤り
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitCode はエラーを終了コードに変換する
// 内部エラーの場合はログを出力する
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}

	switch apperr.KindOf(err) {
	case apperr.ErrNotFound:
		return ExitNotFound
	case apperr.ErrDuplicateKey:
		return ExitDuplicate
	case apperr.ErrInvalidInput:
		return ExitInvalidInput
	case apperr.ErrCapacityExceeded:
		return ExitCapacityExceeded
	}

	logger.Error("内部エラー", zap.Error(err))
	return ExitInternal
}

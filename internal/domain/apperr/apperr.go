package apperr

import "errors"

// エラー種別
// ドメインごとのエラーはいずれかの種別をラップする
var (
	ErrNotFound         = errors.New("見つかりません")
	ErrDuplicateKey     = errors.New("キーが重複しています")
	ErrInvalidInput     = errors.New("入力値が不正です")
	ErrCapacityExceeded = errors.New("空き室がありません")
)

// Error は種別付きのドメインエラー
type Error struct {
	Kind    error
	Message string
}

// New は種別付きのエラーを作成する
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap は errors.Is で種別を判定できるようにする
func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf はエラーの種別を返す。種別が不明な場合は nil
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrDuplicateKey, ErrInvalidInput, ErrCapacityExceeded} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

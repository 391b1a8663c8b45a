package customer

import "github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"

// Customer ドメインのエラー定義
var (
	ErrCustomerNotFound      = apperr.New(apperr.ErrNotFound, "顧客が見つかりません")
	ErrCustomerAlreadyExists = apperr.New(apperr.ErrDuplicateKey, "同じIDの顧客が既に存在します")
	ErrCustomerIDRequired    = apperr.New(apperr.ErrInvalidInput, "顧客IDは必須です")
	ErrNameRequired          = apperr.New(apperr.ErrInvalidInput, "氏名は必須です")
	ErrEmailRequired         = apperr.New(apperr.ErrInvalidInput, "メールアドレスは必須です")
	ErrInvalidEmail          = apperr.New(apperr.ErrInvalidInput, "メールアドレスの形式が不正です")
)

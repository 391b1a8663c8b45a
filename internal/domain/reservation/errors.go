package reservation

import "github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"

// Reservation ドメインのエラー定義
var (
	ErrReservationNotFound      = apperr.New(apperr.ErrNotFound, "予約が見つかりません")
	ErrReservationAlreadyExists = apperr.New(apperr.ErrDuplicateKey, "同じIDの予約が既に存在します")
	ErrReservationIDRequired    = apperr.New(apperr.ErrInvalidInput, "予約IDは必須です")
	ErrCustomerIDRequired       = apperr.New(apperr.ErrInvalidInput, "顧客IDは必須です")
	ErrHotelNameRequired        = apperr.New(apperr.ErrInvalidInput, "ホテル名は必須です")
)

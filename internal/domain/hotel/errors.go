package hotel

import "github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"

// Hotel ドメインのエラー定義
var (
	ErrHotelNotFound           = apperr.New(apperr.ErrNotFound, "ホテルが見つかりません")
	ErrHotelAlreadyExists      = apperr.New(apperr.ErrDuplicateKey, "同じ名前のホテルが既に存在します")
	ErrNameRequired            = apperr.New(apperr.ErrInvalidInput, "ホテル名は必須です")
	ErrLocationRequired        = apperr.New(apperr.ErrInvalidInput, "所在地は必須です")
	ErrInvalidTotalRooms       = apperr.New(apperr.ErrInvalidInput, "客室数は1以上である必要があります")
	ErrInvalidReservedRooms    = apperr.New(apperr.ErrInvalidInput, "予約済み客室数は0以上である必要があります")
	ErrTotalRoomsBelowReserved = apperr.New(apperr.ErrInvalidInput, "客室数を予約済み客室数より少なくできません")
	ErrNoAvailableRooms        = apperr.New(apperr.ErrCapacityExceeded, "空き室がありません")
	ErrHotelHasReservations    = apperr.New(apperr.ErrInvalidInput, "予約が残っているホテルは改名・削除できません")
)

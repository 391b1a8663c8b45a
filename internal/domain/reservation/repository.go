package reservation

import "context"

// Repository は予約リポジトリのインターフェース
type Repository interface {
	// Create は新しい予約を保存する
	Create(ctx context.Context, reservation *Reservation) error

	// GetByID はIDから予約を取得する
	GetByID(ctx context.Context, id string) (*Reservation, error)

	// List は予約一覧をID順で取得する
	List(ctx context.Context) ([]*Reservation, error)

	// GetByCustomerID は顧客IDから予約一覧を取得する
	GetByCustomerID(ctx context.Context, customerID string) ([]*Reservation, error)

	// GetByHotelName はホテル名から予約一覧を取得する
	GetByHotelName(ctx context.Context, hotelName string) ([]*Reservation, error)

	// Delete は予約を削除する
	Delete(ctx context.Context, id string) error
}

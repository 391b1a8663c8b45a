package reservation

import (
	"github.com/google/uuid"

	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/validation"
)

// IDLength は自動採番する予約IDの長さ
const IDLength = 8

// Reservation は予約エンティティを表す
// 顧客1人とホテル1軒を参照する
type Reservation struct {
	ID         string `validate:"required"`
	CustomerID string `validate:"required"`
	HotelName  string `validate:"required"`
}

// NewReservation は新しい予約を作成する
// id が空の場合は UUID の先頭 IDLength 文字を採番する
func NewReservation(id, customerID, hotelName string) *Reservation {
	if id == "" {
		id = NewID()
	}
	return &Reservation{
		ID:         id,
		CustomerID: customerID,
		HotelName:  hotelName,
	}
}

// NewID は短い予約IDを生成する
func NewID() string {
	return uuid.New().String()[:IDLength]
}

var fieldErrors = validation.FieldErrors{
	"ID":         ErrReservationIDRequired,
	"CustomerID": ErrCustomerIDRequired,
	"HotelName":  ErrHotelNameRequired,
}

// Validate は予約の検証を行う
func (r *Reservation) Validate() error {
	return validation.Struct(r, fieldErrors)
}

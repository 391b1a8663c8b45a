package application

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

// AvailabilityCache は空き室数キャッシュのインターフェース
// infrastructure/redis.RoomCache が実装する
type AvailabilityCache interface {
	GetAvailableRooms(ctx context.Context, hotelName string) (int, error)
	SetAvailableRooms(ctx context.Context, hotelName string, count int) error
	Invalidate(ctx context.Context, hotelName string) error
	IsMiss(err error) bool
}

// HotelRooms は予約処理が利用するホテル操作
type HotelRooms interface {
	GetHotel(ctx context.Context, name string) (*hotel.Hotel, error)
	ReserveRoom(ctx context.Context, name string) (*hotel.Hotel, error)
	ReleaseRoom(ctx context.Context, name string) (*hotel.Hotel, error)
}

// HotelReservations はホテルに紐づく予約の参照
// reservation.Repository が実装する
type HotelReservations interface {
	GetByHotelName(ctx context.Context, hotelName string) ([]*reservation.Reservation, error)
}

// CustomerLookup は予約処理が利用する顧客参照
type CustomerLookup interface {
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
}

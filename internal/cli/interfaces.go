package cli

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

// HotelServiceInterface はホテルサービスのインターフェース
type HotelServiceInterface interface {
	CreateHotel(ctx context.Context, input application.CreateHotelInput) (*hotel.Hotel, error)
	GetHotel(ctx context.Context, name string) (*hotel.Hotel, error)
	ListHotels(ctx context.Context) ([]*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, input application.UpdateHotelInput) (*hotel.Hotel, error)
	DeleteHotel(ctx context.Context, name string) error
	AvailableRooms(ctx context.Context, name string) (int, error)
	DescribeHotel(ctx context.Context, name string) (string, error)
}

// CustomerServiceInterface は顧客サービスのインターフェース
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, input application.CreateCustomerInput) (*customer.Customer, error)
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
	ListCustomers(ctx context.Context) ([]*customer.Customer, error)
	UpdateCustomer(ctx context.Context, input application.UpdateCustomerInput) (*customer.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	DescribeCustomer(ctx context.Context, id string) (string, error)
}

// ReservationServiceInterface は予約サービスのインターフェース
type ReservationServiceInterface interface {
	CreateReservation(ctx context.Context, input application.CreateReservationInput) (*reservation.Reservation, error)
	GetReservation(ctx context.Context, id string) (*reservation.Reservation, error)
	ListReservations(ctx context.Context) ([]*reservation.Reservation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*reservation.Reservation, error)
	ListByHotel(ctx context.Context, hotelName string) ([]*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id string) (*reservation.Reservation, error)
}

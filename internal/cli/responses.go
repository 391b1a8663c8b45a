package cli

import (
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

type HotelResponse struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalRooms     int    `json:"total_rooms"`
	ReservedRooms  int    `json:"reserved_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}

func toHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		Name: h.Name, Location: h.Location,
		TotalRooms: h.TotalRooms, ReservedRooms: h.ReservedRooms,
		AvailableRooms: h.AvailableRooms(),
	}
}

type CustomerResponse struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

type ReservationResponse struct {
	ID         string `json:"reservation_id"`
	CustomerID string `json:"customer_id"`
	HotelName  string `json:"hotel_name"`
}

func toReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{ID: r.ID, CustomerID: r.CustomerID, HotelName: r.HotelName}
}

type AvailabilityResponse struct {
	Hotel          string `json:"hotel"`
	AvailableRooms int    `json:"available_rooms"`
}

package jsonfile

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// ReservationStoreName は予約ストアの名前
const ReservationStoreName = "reservations"

type reservationRecord struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelName     string `json:"hotel_name"`
}

type ReservationRepository struct {
	c *Collection[reservationRecord]
}

func NewReservationRepository(path string, m *metrics.Metrics) *ReservationRepository {
	return &ReservationRepository{c: Open[reservationRecord](ReservationStoreName, path, m, checkReservationRecord)}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	return r.c.Mutate(func(items map[string]reservationRecord) error {
		if _, ok := items[res.ID]; ok {
			return reservation.ErrReservationAlreadyExists
		}
		items[res.ID] = toReservationRecord(res)
		return nil
	})
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	rec, ok := r.c.Get(id)
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return toReservationEntity(id, rec), nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.filter(func(reservationRecord) bool { return true }), nil
}

func (r *ReservationRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*reservation.Reservation, error) {
	return r.filter(func(rec reservationRecord) bool { return rec.CustomerID == customerID }), nil
}

func (r *ReservationRepository) GetByHotelName(ctx context.Context, hotelName string) ([]*reservation.Reservation, error) {
	return r.filter(func(rec reservationRecord) bool { return rec.HotelName == hotelName }), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(func(items map[string]reservationRecord) error {
		if _, ok := items[id]; !ok {
			return reservation.ErrReservationNotFound
		}
		delete(items, id)
		return nil
	})
}

func (r *ReservationRepository) filter(keep func(reservationRecord) bool) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0)
	for _, k := range r.c.Keys() {
		rec, ok := r.c.Get(k)
		if ok && keep(rec) {
			out = append(out, toReservationEntity(k, rec))
		}
	}
	return out
}

func toReservationRecord(res *reservation.Reservation) reservationRecord {
	return reservationRecord{
		ReservationID: res.ID,
		CustomerID:    res.CustomerID,
		HotelName:     res.HotelName,
	}
}

func toReservationEntity(key string, rec reservationRecord) *reservation.Reservation {
	return &reservation.Reservation{
		ID:         key,
		CustomerID: rec.CustomerID,
		HotelName:  rec.HotelName,
	}
}

func checkReservationRecord(key string, rec reservationRecord) error {
	return toReservationEntity(key, rec).Validate()
}

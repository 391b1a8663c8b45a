package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

const reservationStore = "reservations"

// 予約作成結果のラベル
const (
	StatusSuccess          = "success"
	StatusCapacityExceeded = "capacity_exceeded"
	StatusNotFound         = "not_found"
	StatusDuplicate        = "duplicate"
	StatusInvalid          = "invalid"
	StatusError            = "error"
)

type ReservationService struct {
	reservationRepo reservation.Repository
	customers       CustomerLookup
	hotels          HotelRooms
	metrics         *metrics.Metrics
}

func NewReservationService(rr reservation.Repository, cl CustomerLookup, hr HotelRooms, m *metrics.Metrics) *ReservationService {
	return &ReservationService{reservationRepo: rr, customers: cl, hotels: hr, metrics: m}
}

// CreateReservationInput は予約作成の入力
// ReservationID が空の場合は自動採番する
type CreateReservationInput struct {
	ReservationID string
	CustomerID    string
	HotelName     string
}

func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error) {
	res, err := s.create(ctx, input)
	s.metrics.ObserveReservation(reservationStatus(err))
	s.metrics.ObserveOperation(reservationStore, "create", err)
	if err != nil {
		return nil, err
	}
	logger.Info("予約を作成",
		zap.String("reservation_id", res.ID),
		zap.String("customer_id", res.CustomerID),
		zap.String("hotel", res.HotelName),
	)
	return res, nil
}

func (s *ReservationService) create(ctx context.Context, input CreateReservationInput) (*reservation.Reservation, error) {
	res := reservation.NewReservation(input.ReservationID, input.CustomerID, input.HotelName)
	if err := res.Validate(); err != nil {
		return nil, err
	}

	// 参照先の確認
	if _, err := s.customers.GetCustomer(ctx, res.CustomerID); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetHotel(ctx, res.HotelName); err != nil {
		return nil, err
	}

	// 重複チェック
	_, err := s.reservationRepo.GetByID(ctx, res.ID)
	if err == nil {
		return nil, reservation.ErrReservationAlreadyExists
	}
	if !errors.Is(err, reservation.ErrReservationNotFound) {
		return nil, fmt.Errorf("予約の重複チェックに失敗: %w", err)
	}

	// 客室確保（満室なら何も保存しない）
	if _, err := s.hotels.ReserveRoom(ctx, res.HotelName); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Create(ctx, res); err != nil {
		if _, rerr := s.hotels.ReleaseRoom(ctx, res.HotelName); rerr != nil {
			logger.Error("予約保存失敗後の客室解放に失敗",
				zap.String("reservation_id", res.ID),
				zap.String("hotel", res.HotelName),
				zap.Error(rerr),
			)
		}
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id string) (*reservation.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListReservations(ctx context.Context) ([]*reservation.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

func (s *ReservationService) ListByCustomer(ctx context.Context, customerID string) ([]*reservation.Reservation, error) {
	return s.reservationRepo.GetByCustomerID(ctx, customerID)
}

func (s *ReservationService) ListByHotel(ctx context.Context, hotelName string) ([]*reservation.Reservation, error) {
	return s.reservationRepo.GetByHotelName(ctx, hotelName)
}

// CancelReservation は客室を解放してから予約を削除する
// ホテルが既に存在しない場合は解放をスキップして削除のみ行う
func (s *ReservationService) CancelReservation(ctx context.Context, id string) (*reservation.Reservation, error) {
	res, err := s.cancel(ctx, id)
	s.metrics.ObserveOperation(reservationStore, "cancel", err)
	if err != nil {
		return nil, err
	}
	logger.Info("予約をキャンセル", zap.String("reservation_id", res.ID), zap.String("hotel", res.HotelName))
	return res, nil
}

func (s *ReservationService) cancel(ctx context.Context, id string) (*reservation.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.hotels.ReleaseRoom(ctx, res.HotelName); err != nil {
		if !errors.Is(err, hotel.ErrHotelNotFound) {
			return nil, err
		}
		logger.Warn("予約先のホテルが存在しないため客室解放をスキップ",
			zap.String("reservation_id", res.ID),
			zap.String("hotel", res.HotelName),
		)
	}
	if err := s.reservationRepo.Delete(ctx, res.ID); err != nil {
		return nil, err
	}
	return res, nil
}

func reservationStatus(err error) string {
	if err == nil {
		return StatusSuccess
	}
	switch apperr.KindOf(err) {
	case apperr.ErrCapacityExceeded:
		return StatusCapacityExceeded
	case apperr.ErrNotFound:
		return StatusNotFound
	case apperr.ErrDuplicateKey:
		return StatusDuplicate
	case apperr.ErrInvalidInput:
		return StatusInvalid
	default:
		return StatusError
	}
}

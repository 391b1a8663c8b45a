package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

const hotelStore = "hotels"

type HotelService struct {
	hotelRepo    hotel.Repository
	reservations HotelReservations
	cache        AvailabilityCache
	metrics      *metrics.Metrics
}

// NewHotelService は HotelService を作成する（cache と m は nil 可）
// 予約が残っているホテルの改名・削除は rl で確認して拒否する
func NewHotelService(hr hotel.Repository, rl HotelReservations, cache AvailabilityCache, m *metrics.Metrics) *HotelService {
	return &HotelService{hotelRepo: hr, reservations: rl, cache: cache, metrics: m}
}

type CreateHotelInput struct {
	Name       string
	Location   string
	TotalRooms int
}

func (s *HotelService) CreateHotel(ctx context.Context, input CreateHotelInput) (*hotel.Hotel, error) {
	h := hotel.NewHotel(input.Name, input.Location, input.TotalRooms)
	err := h.Validate()
	if err == nil {
		err = s.hotelRepo.Create(ctx, h)
	}
	s.metrics.ObserveOperation(hotelStore, "create", err)
	if err != nil {
		return nil, err
	}
	s.metrics.SetReservedRooms(h.Name, h.ReservedRooms)
	logger.Info("ホテルを登録", zap.String("hotel", h.Name), zap.Int("total_rooms", h.TotalRooms))
	return h, nil
}

func (s *HotelService) GetHotel(ctx context.Context, name string) (*hotel.Hotel, error) {
	return s.hotelRepo.GetByName(ctx, name)
}

func (s *HotelService) ListHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	return s.hotelRepo.List(ctx)
}

// UpdateHotelInput は部分更新の入力。nil のフィールドは変更しない
type UpdateHotelInput struct {
	Name       string
	NewName    *string
	Location   *string
	TotalRooms *int
}

func (s *HotelService) UpdateHotel(ctx context.Context, input UpdateHotelInput) (*hotel.Hotel, error) {
	h, err := s.update(ctx, input)
	s.metrics.ObserveOperation(hotelStore, "update", err)
	if err != nil {
		return nil, err
	}
	if h.Name != input.Name {
		s.metrics.ForgetHotel(input.Name)
		s.invalidate(ctx, input.Name)
		logger.Info("ホテルを改名", zap.String("from", input.Name), zap.String("to", h.Name))
	}
	s.metrics.SetReservedRooms(h.Name, h.ReservedRooms)
	s.invalidate(ctx, h.Name)
	return h, nil
}

func (s *HotelService) update(ctx context.Context, input UpdateHotelInput) (*hotel.Hotel, error) {
	h, err := s.hotelRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	// 予約は hotel_name でホテルを参照するため、予約が残っている間は改名しない
	if input.NewName != nil && *input.NewName != input.Name {
		if err := s.ensureNoReservations(ctx, input.Name); err != nil {
			return nil, err
		}
	}
	if input.Location != nil {
		h.Location = *input.Location
	}
	if input.TotalRooms != nil {
		h.TotalRooms = *input.TotalRooms
	}
	if input.NewName != nil {
		h.Name = *input.NewName
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := s.hotelRepo.Update(ctx, input.Name, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HotelService) DeleteHotel(ctx context.Context, name string) error {
	err := s.delete(ctx, name)
	s.metrics.ObserveOperation(hotelStore, "delete", err)
	if err != nil {
		return err
	}
	s.metrics.ForgetHotel(name)
	s.invalidate(ctx, name)
	logger.Info("ホテルを削除", zap.String("hotel", name))
	return nil
}

func (s *HotelService) delete(ctx context.Context, name string) error {
	if _, err := s.hotelRepo.GetByName(ctx, name); err != nil {
		return err
	}
	if err := s.ensureNoReservations(ctx, name); err != nil {
		return err
	}
	return s.hotelRepo.Delete(ctx, name)
}

func (s *HotelService) ensureNoReservations(ctx context.Context, name string) error {
	list, err := s.reservations.GetByHotelName(ctx, name)
	if err != nil {
		return fmt.Errorf("ホテルの予約確認に失敗: %w", err)
	}
	if len(list) > 0 {
		logger.Warn("予約が残っているため変更を拒否",
			zap.String("hotel", name), zap.Int("reservations", len(list)))
		return hotel.ErrHotelHasReservations
	}
	return nil
}

// ReserveRoom は予約済み客室を1つ増やす。満室の場合は hotel.ErrNoAvailableRooms
func (s *HotelService) ReserveRoom(ctx context.Context, name string) (*hotel.Hotel, error) {
	h, err := s.reserveRoom(ctx, name)
	s.metrics.ObserveOperation(hotelStore, "reserve_room", err)
	if err != nil {
		return nil, err
	}
	s.metrics.SetReservedRooms(h.Name, h.ReservedRooms)
	s.invalidate(ctx, h.Name)
	return h, nil
}

func (s *HotelService) reserveRoom(ctx context.Context, name string) (*hotel.Hotel, error) {
	h, err := s.hotelRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := h.ReserveRoom(); err != nil {
		return nil, err
	}
	if err := s.hotelRepo.Update(ctx, name, h); err != nil {
		return nil, err
	}
	return h, nil
}

// ReleaseRoom は予約済み客室を1つ減らす（0未満にはしない）
func (s *HotelService) ReleaseRoom(ctx context.Context, name string) (*hotel.Hotel, error) {
	h, err := s.releaseRoom(ctx, name)
	s.metrics.ObserveOperation(hotelStore, "release_room", err)
	if err != nil {
		return nil, err
	}
	s.metrics.SetReservedRooms(h.Name, h.ReservedRooms)
	s.invalidate(ctx, h.Name)
	return h, nil
}

func (s *HotelService) releaseRoom(ctx context.Context, name string) (*hotel.Hotel, error) {
	h, err := s.hotelRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !h.ReleaseRoom() {
		logger.Warn("予約済み客室が0のため解放をスキップ", zap.String("hotel", name))
		return h, nil
	}
	if err := s.hotelRepo.Update(ctx, name, h); err != nil {
		return nil, err
	}
	return h, nil
}

// AvailableRooms は空き室数を返す。キャッシュがあれば優先する
func (s *HotelService) AvailableRooms(ctx context.Context, name string) (int, error) {
	if s.cache != nil {
		count, err := s.cache.GetAvailableRooms(ctx, name)
		if err == nil {
			return count, nil
		}
		if !s.cache.IsMiss(err) {
			logger.Warn("空き室数キャッシュの取得に失敗", zap.String("hotel", name), zap.Error(err))
		}
	}

	h, err := s.hotelRepo.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	count := h.AvailableRooms()
	if s.cache != nil {
		if err := s.cache.SetAvailableRooms(ctx, name, count); err != nil {
			logger.Warn("空き室数キャッシュの保存に失敗", zap.String("hotel", name), zap.Error(err))
		}
	}
	return count, nil
}

// DescribeHotel は表示用の文字列を返す
func (s *HotelService) DescribeHotel(ctx context.Context, name string) (string, error) {
	h, err := s.hotelRepo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return h.Describe(), nil
}

func (s *HotelService) invalidate(ctx context.Context, name string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, name); err != nil {
		logger.Warn("空き室数キャッシュの無効化に失敗", zap.String("hotel", name), zap.Error(err))
	}
}

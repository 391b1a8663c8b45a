package jsonfile

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// HotelStoreName はホテルストアの名前（ログ・メトリクスのラベル）
const HotelStoreName = "hotels"

type hotelRecord struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	TotalRooms    int    `json:"total_rooms"`
	ReservedRooms int    `json:"reserved_rooms"`
}

type HotelRepository struct {
	c *Collection[hotelRecord]
}

func NewHotelRepository(path string, m *metrics.Metrics) *HotelRepository {
	return &HotelRepository{c: Open[hotelRecord](HotelStoreName, path, m, checkHotelRecord)}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	return r.c.Mutate(func(items map[string]hotelRecord) error {
		if _, ok := items[h.Name]; ok {
			return hotel.ErrHotelAlreadyExists
		}
		items[h.Name] = toHotelRecord(h)
		return nil
	})
}

func (r *HotelRepository) GetByName(ctx context.Context, name string) (*hotel.Hotel, error) {
	rec, ok := r.c.Get(name)
	if !ok {
		return nil, hotel.ErrHotelNotFound
	}
	return toHotelEntity(name, rec), nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*hotel.Hotel, error) {
	keys := r.c.Keys()
	out := make([]*hotel.Hotel, 0, len(keys))
	for _, k := range keys {
		if rec, ok := r.c.Get(k); ok {
			out = append(out, toHotelEntity(k, rec))
		}
	}
	return out, nil
}

func (r *HotelRepository) Update(ctx context.Context, name string, h *hotel.Hotel) error {
	return r.c.Mutate(func(items map[string]hotelRecord) error {
		if _, ok := items[name]; !ok {
			return hotel.ErrHotelNotFound
		}
		if h.Name != name {
			if _, ok := items[h.Name]; ok {
				return hotel.ErrHotelAlreadyExists
			}
			delete(items, name)
		}
		items[h.Name] = toHotelRecord(h)
		return nil
	})
}

func (r *HotelRepository) Delete(ctx context.Context, name string) error {
	return r.c.Mutate(func(items map[string]hotelRecord) error {
		if _, ok := items[name]; !ok {
			return hotel.ErrHotelNotFound
		}
		delete(items, name)
		return nil
	})
}

func toHotelRecord(h *hotel.Hotel) hotelRecord {
	return hotelRecord{
		Name:          h.Name,
		Location:      h.Location,
		TotalRooms:    h.TotalRooms,
		ReservedRooms: h.ReservedRooms,
	}
}

// キーをホテル名の正とする
func toHotelEntity(key string, rec hotelRecord) *hotel.Hotel {
	return &hotel.Hotel{
		Name:          key,
		Location:      rec.Location,
		TotalRooms:    rec.TotalRooms,
		ReservedRooms: rec.ReservedRooms,
	}
}

// 読み込み時にドメインの制約を満たさないレコードを除外する
func checkHotelRecord(key string, rec hotelRecord) error {
	return toHotelEntity(key, rec).Validate()
}

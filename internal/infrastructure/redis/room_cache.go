package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// RoomCache はホテルの空き室数のキャッシュを管理する
type RoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomCache は新しいRoomCacheインスタンスを作成する
func NewRoomCache(client *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{client: client, ttl: ttl}
}

// GetAvailableRooms はホテルの空き室数をキャッシュから取得する
func (c *RoomCache) GetAvailableRooms(ctx context.Context, hotelName string) (int, error) {
	val, err := c.client.Get(ctx, c.availableRoomsKey(hotelName)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	return val, nil
}

// SetAvailableRooms はホテルの空き室数をキャッシュに保存する
func (c *RoomCache) SetAvailableRooms(ctx context.Context, hotelName string, count int) error {
	err := c.client.Set(ctx, c.availableRoomsKey(hotelName), count, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はホテルのキャッシュを無効化する
func (c *RoomCache) Invalidate(ctx context.Context, hotelName string) error {
	err := c.client.Del(ctx, c.availableRoomsKey(hotelName)).Err()
	if err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

// IsMiss はキャッシュミスかを返す
func (c *RoomCache) IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

func (c *RoomCache) availableRoomsKey(hotelName string) string {
	return fmt.Sprintf("rooms:available:%s", hotelName)
}

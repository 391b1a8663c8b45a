package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-hotel-reservation/internal/cli"
)

func setupHotelAndCustomer(t *testing.T, s *Stack, rooms string) {
	t.Helper()
	_, code := s.Run("hotel", "create", "-name", "Plaza", "-location", "CDMX", "-rooms", rooms)
	require.Equal(t, cli.ExitOK, code)
	_, code = s.Run("customer", "create", "-id", "C1", "-name", "Alice", "-email", "alice@mail.com")
	require.Equal(t, cli.ExitOK, code)
}

func availability(t *testing.T, s *Stack) int {
	t.Helper()
	out, code := s.Run("-json", "hotel", "available", "-name", "Plaza")
	require.Equal(t, cli.ExitOK, code)
	var resp cli.AvailabilityResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp.AvailableRooms
}

// TestReservationFlow は予約の作成からキャンセルまでの一連の流れ
func TestReservationFlow(t *testing.T) {
	s := NewStack(t, false)
	setupHotelAndCustomer(t, s, "1")

	t.Run("1件目の予約は成功", func(t *testing.T) {
		out, code := s.Run("reservation", "create", "-id", "R1", "-customer", "C1", "-hotel", "Plaza")
		require.Equal(t, cli.ExitOK, code)
		assert.Contains(t, out, "R1")
		assert.Equal(t, 0, availability(t, s))
	})

	t.Run("満室なら2件目は失敗", func(t *testing.T) {
		_, code := s.Run("reservation", "create", "-id", "R2", "-customer", "C1", "-hotel", "Plaza")
		assert.Equal(t, cli.ExitCapacityExceeded, code)
		_, code = s.Run("reservation", "show", "-id", "R2")
		assert.Equal(t, cli.ExitNotFound, code)
	})

	t.Run("キャンセルで空室に戻る", func(t *testing.T) {
		_, code := s.Run("reservation", "cancel", "-id", "R1")
		require.Equal(t, cli.ExitOK, code)
		assert.Equal(t, 1, availability(t, s))
	})
}

// TestPersistedFormat はファイルに書かれる形式を確認する
func TestPersistedFormat(t *testing.T) {
	s := NewStack(t, false)
	setupHotelAndCustomer(t, s, "2")
	_, code := s.Run("reservation", "create", "-id", "R1", "-customer", "C1", "-hotel", "Plaza")
	require.Equal(t, cli.ExitOK, code)

	b, err := os.ReadFile(s.cfg.Storage.HotelsPath())
	require.NoError(t, err)
	var hotels map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &hotels))
	assert.Equal(t, map[string]any{
		"name": "Plaza", "location": "CDMX", "total_rooms": float64(2), "reserved_rooms": float64(1),
	}, hotels["Plaza"])

	b, err = os.ReadFile(s.cfg.Storage.ReservationsPath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"R1\": {"), string(b))
	assert.Equal(t, filepath.Join(s.cfg.Storage.DataDir, "reservations.json"), s.cfg.Storage.ReservationsPath())
}

// TestCorruptStore は壊れたファイルがあっても空のストアとして動作することを確認する
func TestCorruptStore(t *testing.T) {
	s := NewStack(t, false)
	require.NoError(t, os.MkdirAll(s.cfg.Storage.DataDir, 0o755))
	require.NoError(t, os.WriteFile(s.cfg.Storage.HotelsPath(), []byte("[1, 2"), 0o644))

	out, code := s.Run("-json", "hotel", "list")
	require.Equal(t, cli.ExitOK, code)
	assert.JSONEq(t, "[]", out)

	setupHotelAndCustomer(t, s, "1")
	out, code = s.Run("-json", "hotel", "list")
	require.Equal(t, cli.ExitOK, code)
	var hotels []cli.HotelResponse
	require.NoError(t, json.Unmarshal([]byte(out), &hotels))
	assert.Len(t, hotels, 1)
}

// TestReservationFlowWithCache はRedisの空き室数キャッシュを有効にした流れ
func TestReservationFlowWithCache(t *testing.T) {
	s := NewStack(t, true)
	setupHotelAndCustomer(t, s, "2")

	assert.Equal(t, 2, availability(t, s))

	_, code := s.Run("reservation", "create", "-id", "R1", "-customer", "C1", "-hotel", "Plaza")
	require.Equal(t, cli.ExitOK, code)
	// 予約で無効化されるため古い値は返らない
	assert.Equal(t, 1, availability(t, s))

	_, code = s.Run("hotel", "update", "-name", "Plaza", "-rooms", "5")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 4, availability(t, s))

	_, code = s.Run("reservation", "cancel", "-id", "R1")
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 5, availability(t, s))
}

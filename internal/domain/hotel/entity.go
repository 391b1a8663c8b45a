package hotel

import (
	"fmt"

	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/validation"
)

// Hotel はホテルエンティティを表す
// Name がホテルを一意に識別する
type Hotel struct {
	Name          string `validate:"required"`
	Location      string `validate:"required"`
	TotalRooms    int    `validate:"gt=0"`
	ReservedRooms int    `validate:"gte=0,ltefield=TotalRooms"`
}

// NewHotel は新しいホテルを作成する（予約済み客室は0）
func NewHotel(name, location string, totalRooms int) *Hotel {
	return &Hotel{
		Name:       name,
		Location:   location,
		TotalRooms: totalRooms,
	}
}

var fieldErrors = validation.FieldErrors{
	"Name":                   ErrNameRequired,
	"Location":               ErrLocationRequired,
	"TotalRooms":             ErrInvalidTotalRooms,
	"ReservedRooms.ltefield": ErrTotalRoomsBelowReserved,
	"ReservedRooms":          ErrInvalidReservedRooms,
}

// Validate はホテルの検証を行う
func (h *Hotel) Validate() error {
	return validation.Struct(h, fieldErrors)
}

// AvailableRooms は空き室数を返す
func (h *Hotel) AvailableRooms() int {
	return h.TotalRooms - h.ReservedRooms
}

// HasAvailableRoom は予約可能な客室があるかを返す
func (h *Hotel) HasAvailableRoom() bool {
	return h.ReservedRooms < h.TotalRooms
}

// ReserveRoom は予約済み客室を1つ増やす
func (h *Hotel) ReserveRoom() error {
	if !h.HasAvailableRoom() {
		return ErrNoAvailableRooms
	}
	h.ReservedRooms++
	return nil
}

// ReleaseRoom は予約済み客室を1つ減らす
// 既に0の場合は何もせず false を返す
func (h *Hotel) ReleaseRoom() bool {
	if h.ReservedRooms <= 0 {
		h.ReservedRooms = 0
		return false
	}
	h.ReservedRooms--
	return true
}

// Describe は表示用の文字列を返す
func (h *Hotel) Describe() string {
	return fmt.Sprintf("Hotel: %s\nLocation: %s\nTotal Rooms: %d\nReserved Rooms: %d\nAvailable Rooms: %d",
		h.Name, h.Location, h.TotalRooms, h.ReservedRooms, h.AvailableRooms())
}

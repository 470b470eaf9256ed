package models

import "github.com/google/uuid"

type RoomType string

const (
	RoomSingle    RoomType = "single"
	RoomDouble    RoomType = "double"
	RoomTriple    RoomType = "triple"
	RoomDormitory RoomType = "dormitory"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomTriple, RoomDormitory:
		return true
	}
	return false
}

// Room belongs to one hostel; RoomNumber is unique within it.
// CurrentOccupants is derived from allocations with status=allocated and
// is only ever changed by the occupancy manager inside a store update.
type Room struct {
	ID               uuid.UUID `json:"id"`
	HostelID         uuid.UUID `json:"hostel_id"`
	RoomNumber       string    `json:"room_number"`
	Floor            int       `json:"floor"`
	Capacity         int       `json:"capacity"`
	CurrentOccupants int       `json:"current_occupants"`
	Type             RoomType  `json:"type"`
	Rent             float64   `json:"rent"`
	IsActive         bool      `json:"is_active"`
}

func (r *Room) HasVacancy() bool {
	return r.IsActive && r.CurrentOccupants < r.Capacity
}

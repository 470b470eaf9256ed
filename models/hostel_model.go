package models

import "github.com/google/uuid"

type HostelType string

const (
	HostelBoys  HostelType = "boys"
	HostelGirls HostelType = "girls"
	HostelMixed HostelType = "mixed"
)

func (t HostelType) Valid() bool {
	switch t {
	case HostelBoys, HostelGirls, HostelMixed:
		return true
	}
	return false
}

// Hostel is catalog reference data. OccupiedRooms is derived: the number
// of rooms in this hostel whose occupants have reached capacity. It is
// recomputed by the store whenever occupancy changes, never set by callers.
type Hostel struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Type          HostelType `json:"type"`
	TotalRooms    int        `json:"total_rooms"`
	OccupiedRooms int        `json:"occupied_rooms"`
	WardenName    string     `json:"warden_name"`
	WardenPhone   string     `json:"warden_phone"`
	Facilities    []string   `json:"facilities,omitempty"`
	IsActive      bool       `json:"is_active"`
}

package domain

import "time"

// Favorite links a user to an equipment item on their shortlist.
// The (user_id, equipment_id) pair is unique.
type Favorite struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	EquipmentID int64     `json:"equipment_id"`
	CreatedAt   time.Time `json:"created_at"`

	Equipment *Equipment `json:"equipment,omitempty"`
}

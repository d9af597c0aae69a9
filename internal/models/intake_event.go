package models

import "time"

// IntakeEvent is one immutable logged drink. Amount is always positive; rows
// are created and deleted, never updated. Daily totals are recomputed from the
// ledger, so deleting a row reverses exactly its contribution.
type IntakeEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"index;not null" json:"profileId"`
	Amount    int       `gorm:"not null" json:"amount"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

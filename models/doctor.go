package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2" bson:"line2"`
}

type Doctor struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email,omitempty" bson:"email"`
	Password    string             `json:"password,omitempty" bson:"password,omitempty"`
	Image       string             `json:"image" bson:"image"`
	Speciality  string             `json:"speciality" bson:"speciality"`
	Degree      string             `json:"degree" bson:"degree"`
	Experience  string             `json:"experience" bson:"experience"`
	About       string             `json:"about" bson:"about"`
	Available   bool               `json:"available" bson:"available"`
	Fees        float64            `json:"fees" bson:"fees"`
	Address     Address            `json:"address" bson:"address"`
	SlotsBooked SlotLedger         `json:"slots_booked" bson:"slots_booked"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Snapshot is the denormalized doctor copy stored on appointments:
// no password, no ledger.
func (d Doctor) Snapshot() Doctor {
	d.Password = ""
	d.SlotsBooked = nil
	return d
}

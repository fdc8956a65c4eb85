package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is an independent, soft-deletable record. The cancelled flag
// is authoritative; the doctor's slot ledger is a derived index kept in sync
// by the booking and cancellation services.
type Appointment struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	DocID       string             `json:"docId" bson:"docId"`
	SlotDate    string             `json:"slotDate" bson:"slotDate"`
	SlotTime    string             `json:"slotTime" bson:"slotTime"`
	UserData    User               `json:"userData" bson:"userData"`
	DocData     Doctor             `json:"docData" bson:"docData"`
	Amount      float64            `json:"amount" bson:"amount"`
	Date        time.Time          `json:"date" bson:"date"`
	Cancelled   bool               `json:"cancelled" bson:"cancelled"`
	Payment     bool               `json:"payment" bson:"payment"`
	IsCompleted bool               `json:"isCompleted" bson:"isCompleted"`
	PaymentID   string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
}

package models

import "errors"

// ErrSlotTaken is returned when reserving a slot that is already booked.
var ErrSlotTaken = errors.New("slot already booked")

// SlotLedger is a doctor's booked capacity: date key -> ordered list of
// booked time slots. It is embedded on the doctor document as slots_booked
// and is the single decision point for whether a booking may proceed.
type SlotLedger map[string][]string

// Has reports whether the (dateKey, timeSlot) pair is already booked.
// A missing date entry counts as empty.
func (l SlotLedger) Has(dateKey, timeSlot string) bool {
	for _, s := range l[dateKey] {
		if s == timeSlot {
			return true
		}
	}
	return false
}

/*
* Reserve appends the slot under the date key
* Fails with ErrSlotTaken and no mutation when the slot is already present
 */
func (l SlotLedger) Reserve(dateKey, timeSlot string) error {
	if l.Has(dateKey, timeSlot) {
		return ErrSlotTaken
	}
	l[dateKey] = append(l[dateKey], timeSlot)
	return nil
}

/*
* Release removes the first occurrence of the slot under the date key
* Removing from a missing or empty entry is a no-op
* Returns whether a slot was actually removed
 */
func (l SlotLedger) Release(dateKey, timeSlot string) bool {
	slots, ok := l[dateKey]
	if !ok {
		return false
	}
	for i, s := range slots {
		if s == timeSlot {
			l[dateKey] = append(slots[:i], slots[i+1:]...)
			return true
		}
	}
	return false
}

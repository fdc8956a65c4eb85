package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Slot times look like "10:00 AM" / "3:30 pm".
var slotTimePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM|am|pm)$`)

func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errors.New(INVALID_EMAIL)
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New(WEAK_PASSWORD)
	}
	return nil
}

/*
* Slot dates are day_month_year keys, e.g. "5_6_2024"
* Each part must be numeric and in calendar range
 */
func ValidateSlotDate(dateKey string) error {
	parts := strings.Split(dateKey, "_")
	if len(parts) != 3 {
		return errors.New(INVALID_DATE_FORMAT)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return errors.New(INVALID_DATE_FORMAT)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return errors.New(INVALID_DATE_FORMAT)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 2000 || year > 9999 {
		return errors.New(INVALID_DATE_FORMAT)
	}
	return nil
}

func ValidateSlotTime(timeSlot string) error {
	if !slotTimePattern.MatchString(timeSlot) {
		return errors.New(INVALID_SLOT_FORMAT)
	}
	return nil
}

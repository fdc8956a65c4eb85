package controllers

import (
	"net/http"

	"DocSpot/utils"
)

/*
* Map service errors onto HTTP statuses for the booking flow
 */
func bookingStatus(err error) int {
	switch err.Error() {
	case utils.SLOT_ALREADY_BOOKED:
		return http.StatusConflict
	case utils.DOCTOR_NOT_FOUND, utils.USER_NOT_FOUND:
		return http.StatusNotFound
	case utils.MISSING_DETAILS, utils.INVALID_DATE_FORMAT, utils.INVALID_SLOT_FORMAT, utils.DOCTOR_NOT_AVAILABLE:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func cancelStatus(err error) int {
	switch err.Error() {
	case utils.APPOINTMENT_NOT_FOUND:
		return http.StatusNotFound
	case utils.NOT_AUTHORIZED:
		return http.StatusUnauthorized
	case utils.APPOINTMENT_ALREADY_CANCELLED:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

package utils

// Error messages surfaced through the failed-response envelope.
const (
	MISSING_DETAILS               = "missing details"
	INVALID_EMAIL                 = "please enter a valid email"
	WEAK_PASSWORD                 = "please enter a strong password"
	EMAIL_ALREADY_REGISTERED      = "email already registered"
	INVALID_CREDENTIALS           = "invalid credentials"
	INVALID_DATE_FORMAT           = "invalid slot date format"
	INVALID_SLOT_FORMAT           = "invalid slot time format"
	DOCTOR_NOT_FOUND              = "doctor not found"
	DOCTOR_NOT_AVAILABLE          = "doctor not available"
	SLOT_ALREADY_BOOKED           = "slot not available"
	USER_NOT_FOUND                = "user not found"
	APPOINTMENT_NOT_FOUND         = "appointment not found"
	APPOINTMENT_ALREADY_CANCELLED = "appointment already cancelled"
	APPOINTMENT_CANCELLED         = "appointment is cancelled"
	APPOINTMENT_ALREADY_PAID      = "appointment already paid"
	PAYMENT_NOT_COMPLETED         = "payment not completed"
	PAYMENT_NOT_INITIATED         = "payment not initiated"
	NOT_AUTHORIZED                = "not authorized"
	TOKEN_NOT_PROVIDED            = "not authorized, login again"
	INVALID_TOKEN                 = "invalid token, login again"
)

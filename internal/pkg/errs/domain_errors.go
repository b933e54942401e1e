package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Stay validation errors (hard failures per the pricing contract)
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidRoomCount = errors.New("number of rooms must be a positive integer")

	// Lookup errors
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Booking errors
	ErrRoomsNotAvailable = errors.New("not enough rooms available for the requested dates")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

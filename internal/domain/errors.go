package domain

import "errors"

var (
	ErrDuplicateVenue        = errors.New("a venue with that name already exists")
	ErrInvalidVenueConfig    = errors.New("invalid venue configuration")
	ErrVenueNotFound         = errors.New("venue not found")
	ErrDuplicateProduction   = errors.New("production already registered")
	ErrProductionNotFound    = errors.New("production not found")
	ErrShowNotFound          = errors.New("no show scheduled for that date")
	ErrDuplicateShowDate     = errors.New("venue already hosts a show on that date")
	ErrShowAlreadyOccurred   = errors.New("show date has already passed")
	ErrSectorNotFound        = errors.New("sector not found")
	ErrSeatOutOfRange        = errors.New("seat number out of range")
	ErrSeatAlreadySold       = errors.New("seat already sold")
	ErrWrongVenueKind        = errors.New("operation not supported by this venue kind")
	ErrInsufficientInventory = errors.New("not enough tickets available")
	ErrDuplicateUser         = errors.New("user already exists with that email")
	ErrUserNotFound          = errors.New("user not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrAlreadyVoided         = errors.New("ticket already voided")
	ErrAuthenticationFailed  = errors.New("invalid credentials")
	ErrSectorMismatch        = errors.New("replacement sector must match the original ticket")
	ErrExchangeFailed        = errors.New("exchange failed")
)

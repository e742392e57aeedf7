package repository

import "errors"

// Sentinel errors surfaced to handlers so they can map store failures to
// the right HTTP status.
var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrBillingNotFound     = errors.New("billing record not found")
	ErrFloorNotFound       = errors.New("floor not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrStayNotFound        = errors.New("admission not found")
	ErrRoomOccupied        = errors.New("room is already occupied")
	ErrAlreadyDischarged   = errors.New("patient already discharged")
	ErrUserNotFound        = errors.New("user not found")
	ErrTokenNotFound       = errors.New("refresh token not found or revoked")
)

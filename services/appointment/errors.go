package appointment

import "errors"

// ErrSlotTaken reports a booking attempt on a slot another active appointment
// already holds.
var ErrSlotTaken = errors.New("the selected time slot is already booked")

// ErrSlotUnavailable reports a booking attempt on a time the doctor does not
// offer, or one too close to the current time.
var ErrSlotUnavailable = errors.New("the selected time slot is not available")

// ErrNotOwner reports a patient acting on an appointment that is not theirs.
var ErrNotOwner = errors.New("appointment does not belong to this patient")

// ErrInvalidTransition reports a lifecycle action the appointment's current
// status does not allow.
var ErrInvalidTransition = errors.New("appointment status does not allow this action")

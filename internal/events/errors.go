package events

import "errors"

// ErrBusClosed is returned when sending on or subscribing to a closed bus
var ErrBusClosed = errors.New("event bus closed")

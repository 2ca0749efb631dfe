package session

import "errors"

var (
	// ErrConfiguration means a required collaborator is missing; the session stays put.
	ErrConfiguration = errors.New("session is missing a required collaborator")
	// ErrUnsupportedDevice means no recognized device family is connected.
	ErrUnsupportedDevice = errors.New("no supported controller connected")
)

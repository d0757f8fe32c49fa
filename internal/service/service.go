package service

import "errors"

// ErrUnprocessable marks a write the store could not carry out
var ErrUnprocessable = errors.New("unprocessable")

// Broadcaster pushes events to connected clients
type Broadcaster interface {
	Broadcast(messageType string, payload []byte)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, []byte) {}

// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"sync"
)

// Event identifies a type of event.
type Event string

// Handler is called with the data of an emitted event.
type Handler func(data interface{})

// Manager manages event listeners for different event types.
//
// Handlers are executed synchronously, in registration order, on the
// goroutine that called Emit. A handler must not register new listeners on
// the same Manager.
type Manager struct {
	sync.RWMutex
	listeners map[Event][]Handler
}

// Register registers an event listener to listen for the provided event
// type.
func (e *Manager) Register(event Event, listener Handler) {
	e.Lock()
	defer e.Unlock()

	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit emits an event by passing it to all listeners that have been
// registered to listen for the event.
func (e *Manager) Emit(event Event, data interface{}) {
	e.RLock()
	listeners := e.listeners[event]
	e.RUnlock()

	log.Tracef("Emit %v to %v listeners", event, len(listeners))

	for _, fn := range listeners {
		fn(data)
	}
}

// NewManager returns a new Manager context.
func NewManager() *Manager {
	return &Manager{
		listeners: make(map[Event][]Handler),
	}
}

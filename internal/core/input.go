package core

import "sync"

// KeyCode identifies a physical key independently of the host toolkit.
// Values follow the DOM KeyboardEvent.code naming ("KeyW", "F2").
type KeyCode string

const (
	KeyW  KeyCode = "KeyW"
	KeyS  KeyCode = "KeyS"
	KeyQ  KeyCode = "KeyQ"
	KeyE  KeyCode = "KeyE"
	KeyF2 KeyCode = "F2"
	KeyF4 KeyCode = "F4"
)

// KeyBus fans key-down events out to registered listeners.
// Hosts call Dispatch between simulation ticks.
type KeyBus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(KeyCode)
	order     []int
}

// NewKeyBus creates an empty key bus.
func NewKeyBus() *KeyBus {
	return &KeyBus{listeners: make(map[int]func(KeyCode))}
}

// AddKeyDownListener registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (b *KeyBus) AddKeyDownListener(fn func(KeyCode)) (remove func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers code to every listener in registration order.
func (b *KeyBus) Dispatch(code KeyCode) {
	b.mu.Lock()
	fns := make([]func(KeyCode), 0, len(b.order))
	for _, id := range b.order {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(code)
	}
}

// Len returns the number of registered listeners.
func (b *KeyBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

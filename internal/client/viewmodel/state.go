package viewmodel

import (
	"context"
	"sync"
)

// StateFlow holds a current value. Subscribers receive the value at the time
// they subscribe and then every replacement, in order.
type StateFlow[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]*subscriber[T]
	next  int
}

func NewStateFlow[T any](initial T) *StateFlow[T] {
	return &StateFlow[T]{value: initial, subs: make(map[int]*subscriber[T])}
}

func (s *StateFlow[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies subscribers. It never blocks on slow
// subscribers.
func (s *StateFlow[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	for _, sub := range s.subs {
		sub.push(v)
	}
}

// Subscribe returns a channel of values that is closed when ctx ends.
func (s *StateFlow[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{wake: make(chan struct{}, 1)}

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = sub
	sub.push(s.value)
	s.mu.Unlock()

	out := make(chan T)
	go func() {
		defer close(out)
		defer func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		}()

		for {
			v, ok := sub.pop()
			if !ok {
				select {
				case <-ctx.Done():
					return
				case <-sub.wake:
					continue
				}
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

type subscriber[T any] struct {
	mu    sync.Mutex
	queue []T
	wake  chan struct{}
}

func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, v)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if len(s.queue) == 0 {
		return zero, false
	}
	v := s.queue[0]
	s.queue[0] = zero
	s.queue = s.queue[1:]
	return v, true
}

const eventBuffer = 16

// EventStream carries one-shot events. Each event goes to exactly one
// receiver and is never replayed.
type EventStream[T any] struct {
	ch chan T
}

func NewEventStream[T any]() *EventStream[T] {
	return &EventStream[T]{ch: make(chan T, eventBuffer)}
}

// Emit queues v, waiting for room while ctx allows.
func (e *EventStream[T]) Emit(ctx context.Context, v T) error {
	select {
	case e.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *EventStream[T]) Events() <-chan T {
	return e.ch
}

package im

import "sync"

// Handler is a revocable continuation. The owner registers it with the
// CallbackRegistry and may cancel it at any time; invoking a cancelled
// handler is a silent no-op. This makes "response arrived after the
// caller lost interest" safe without the registry and the owner having to
// agree on ordering.
type Handler[T any] struct {
	mu sync.Mutex
	fn func(T)
}

// NewHandler wraps fn in a revocable handler.
func NewHandler[T any](fn func(T)) *Handler[T] {
	return &Handler[T]{fn: fn}
}

// Cancel revokes the handler. Safe to call more than once and safe to
// call concurrently with Invoke.
func (h *Handler[T]) Cancel() {
	h.mu.Lock()
	h.fn = nil
	h.mu.Unlock()
}

// Cancelled reports whether the handler has been revoked.
func (h *Handler[T]) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fn == nil
}

// Invoke calls the wrapped continuation with v, unless the handler has
// been cancelled. Returns true if the continuation ran.
func (h *Handler[T]) Invoke(v T) bool {
	h.mu.Lock()
	fn := h.fn
	h.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(v)
	return true
}

package im

import (
	"errors"
	"sync"

	imsg "github.com/provnet/matter/pkg/im/message"
	"github.com/pion/logging"
)

// Registry errors.
var (
	// ErrCallbackExists is returned when a callback pair is already
	// registered for the (node, sequence) key.
	ErrCallbackExists = errors.New("im: response callback already registered")
)

// DecodeFunc decodes a raw response payload into the value handed to the
// success continuation. Each registered caller supplies the decoder for
// the response type it expects.
type DecodeFunc func(payload []byte) (any, error)

// pendingCall is one registered caller waiting for a response.
type pendingCall struct {
	onSuccess *Handler[any]
	onFailure *Handler[imsg.Status]
}

type callbackKey struct {
	node     imsg.NodeID
	sequence uint8
}

// CallbackRegistryConfig configures a CallbackRegistry.
type CallbackRegistryConfig struct {
	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// CallbackRegistry correlates inbound invoke responses with the callers
// that sent the matching requests. The command-issuing path registers a
// success/failure handler pair under (originator node, sequence number)
// before its request leaves; DispatchResponse consumes the pair when the
// response arrives.
//
// Deployments with a single outstanding command per node may register
// every call under sequence 0; the registry only requires that at most
// one pair exists per key at a time.
type CallbackRegistry struct {
	mu      sync.Mutex
	pending map[callbackKey]pendingCall

	log logging.LeveledLogger
}

// NewCallbackRegistry creates an empty registry.
func NewCallbackRegistry(config CallbackRegistryConfig) *CallbackRegistry {
	r := &CallbackRegistry{
		pending: make(map[callbackKey]pendingCall),
	}
	if config.LoggerFactory != nil {
		r.log = config.LoggerFactory.NewLogger("im")
	}
	return r
}

// AddResponseCallback registers a handler pair for the next response from
// node with the given sequence number. Either handler may be nil when the
// caller only cares about one outcome.
func (r *CallbackRegistry) AddResponseCallback(
	node imsg.NodeID,
	sequence uint8,
	onSuccess *Handler[any],
	onFailure *Handler[imsg.Status],
) error {
	key := callbackKey{node: node, sequence: sequence}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pending[key]; exists {
		return ErrCallbackExists
	}

	r.pending[key] = pendingCall{onSuccess: onSuccess, onFailure: onFailure}
	return nil
}

// CancelResponseCallback removes a registered pair without invoking
// either handler. Used when the caller abandons the wait. Removing an
// unknown key is a no-op.
func (r *CallbackRegistry) CancelResponseCallback(node imsg.NodeID, sequence uint8) {
	key := callbackKey{node: node, sequence: sequence}

	r.mu.Lock()
	delete(r.pending, key)
	r.mu.Unlock()
}

// PendingCount returns the number of registered callback pairs.
func (r *CallbackRegistry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// DispatchResponse routes a decoded-at-the-protocol-layer response payload
// to the caller registered under (node, sequence).
//
// The entry is consumed exactly once: a second dispatch against the same
// key finds nothing and returns without effect, which makes duplicate
// response delivery harmless. A missing entry means the caller is no
// longer interested; it is logged, never escalated.
//
// decode runs before either continuation. On decode failure the failure
// handler is invoked once with StatusInvalidValue and the success handler
// is never invoked for this response. Cancelled handlers are skipped
// silently.
func (r *CallbackRegistry) DispatchResponse(
	node imsg.NodeID,
	sequence uint8,
	payload []byte,
	decode DecodeFunc,
) {
	key := callbackKey{node: node, sequence: sequence}

	r.mu.Lock()
	call, ok := r.pending[key]
	if ok {
		delete(r.pending, key)
	}
	r.mu.Unlock()

	if !ok {
		r.logf("no response callback for node %d seq %d", node, sequence)
		return
	}

	value, err := decode(payload)
	if err != nil {
		r.logf("response decode failed for node %d seq %d: %v", node, sequence, err)
		if call.onFailure == nil {
			r.logf("missing failure callback for node %d seq %d", node, sequence)
			return
		}
		if !call.onFailure.Invoke(imsg.StatusInvalidValue) {
			r.logf("failure callback cancelled for node %d seq %d", node, sequence)
		}
		return
	}

	if call.onSuccess == nil {
		r.logf("missing success callback for node %d seq %d", node, sequence)
		return
	}
	if !call.onSuccess.Invoke(value) {
		r.logf("success callback cancelled for node %d seq %d", node, sequence)
	}
}

func (r *CallbackRegistry) logf(format string, args ...any) {
	if r.log != nil {
		r.log.Debugf(format, args...)
	}
}

package message

// Status represents an Interaction Model status code.
type Status uint8

const (
	StatusSuccess             Status = 0x00
	StatusFailure             Status = 0x01
	StatusUnsupportedEndpoint Status = 0x7f
	StatusUnsupportedCommand  Status = 0x81
	StatusInvalidCommand      Status = 0x85
	// StatusInvalidValue is the constraint-violation code (INVALID_VALUE
	// in ZCL terms); delivered to failure continuations when a response
	// payload fails to decode.
	StatusInvalidValue          Status = 0x87
	StatusResourceExhausted     Status = 0x89
	StatusNotFound              Status = 0x8b
	StatusTimeout               Status = 0x94
	StatusBusy                  Status = 0x9c
	StatusUnsupportedCluster    Status = 0xc3
	StatusNeedsTimedInteraction Status = 0xc6
	StatusTimedRequestMismatch  Status = 0xc9
)

// String returns the name of the status code.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusUnsupportedEndpoint:
		return "UnsupportedEndpoint"
	case StatusUnsupportedCommand:
		return "UnsupportedCommand"
	case StatusInvalidCommand:
		return "InvalidCommand"
	case StatusInvalidValue:
		return "InvalidValue"
	case StatusResourceExhausted:
		return "ResourceExhausted"
	case StatusNotFound:
		return "NotFound"
	case StatusTimeout:
		return "Timeout"
	case StatusBusy:
		return "Busy"
	case StatusUnsupportedCluster:
		return "UnsupportedCluster"
	case StatusNeedsTimedInteraction:
		return "NeedsTimedInteraction"
	case StatusTimedRequestMismatch:
		return "TimedRequestMismatch"
	default:
		return "Unknown"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsFailure returns true if the status indicates failure.
func (s Status) IsFailure() bool {
	return s != StatusSuccess
}

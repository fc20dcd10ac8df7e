package domain

import "fmt"

type OutcomeKind int

const (
	// OutcomeAborted means no request was sent.
	OutcomeAborted OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "aborted"
	}
}

// Outcome is the result of one operation. It is only used to render a notification.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

func Failure(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

func TransportError(message string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: message}
}

func Aborted() Outcome {
	return Outcome{Kind: OutcomeAborted}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Sent reports whether a request went out for this outcome.
func (o Outcome) Sent() bool {
	return o.Kind != OutcomeAborted
}

func (o Outcome) String() string {
	if o.Message == "" {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", o.Kind, o.Message)
}

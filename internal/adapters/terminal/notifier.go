package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"

	"fileboard-client/internal/config"
	"fileboard-client/internal/domain"
)

// Notifier prints outcomes the way the browser showed alerts.
type Notifier struct {
	mu       sync.Mutex
	success  *pterm.PrefixPrinter
	failure  *pterm.PrefixPrinter
	messages config.Messages
}

func NewNotifier(w io.Writer, messages config.Messages) *Notifier {
	if w == nil {
		w = os.Stdout
	}
	return &Notifier{
		success:  pterm.Success.WithWriter(w),
		failure:  pterm.Error.WithWriter(w),
		messages: messages,
	}
}

func (n *Notifier) Notify(operation string, outcome domain.Outcome) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		msg := outcome.Message
		if msg == "" {
			msg = operation + " done"
		}
		n.success.Println(msg)
	case domain.OutcomeFailure:
		if operation == domain.OperationUpload {
			n.failure.Println(joinMessage(n.messages.UploadFailed, outcome.Message))
			return
		}
		n.failure.Println(outcome.Message)
	case domain.OutcomeTransportError:
		n.failure.Println(joinMessage(n.messages.TransportError, outcome.Message))
	}
}

func joinMessage(prefix, msg string) string {
	switch {
	case prefix == "":
		return msg
	case msg == "":
		return prefix
	default:
		return prefix + " " + msg
	}
}

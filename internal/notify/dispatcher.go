package notify

import "github.com/rs/zerolog/log"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers owner notifications from a background worker. Mail is
// best effort: a failure is logged, never surfaced to the booking flow.
type Dispatcher struct {
	mailer *Mailer
	queue  chan Message
}

func NewDispatcher(mailer *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.mailer.Send(msg.To, msg.Subject, msg.Body); err != nil {
			log.Error().Err(err).Str("to", msg.To).Msg("notification mail failed")
		}
	}
}

// Dispatch enqueues a message. Nil dispatchers, disabled mailers, empty
// recipients and a full queue are all silent no-ops.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || !d.mailer.Enabled() || msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
	default:
		log.Warn().Str("to", msg.To).Msg("notification queue full, dropping mail")
	}
}

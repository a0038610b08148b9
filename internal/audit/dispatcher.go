package audit

import "github.com/rs/zerolog/log"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event rather than block the request path
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

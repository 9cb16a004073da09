package events

import (
	log "github.com/sirupsen/logrus"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
)

// LogDispatcher writes every domain event to the logger.
type LogDispatcher struct {
	logger log.FieldLogger
}

func NewLogDispatcher(logger log.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Debug("domain event")
	return nil
}

package service

import (
	"context"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/sirupsen/logrus"
)

type TierChangeEvent struct {
	PlayerID       string
	Sport          domain.Sport
	From           tier.Tier
	To             tier.Tier
	EffectiveScore float64
}

// EventSink receives tier-change events for the badge and notification
// systems. Those systems live outside this service; the sink is the boundary.
type EventSink interface {
	TierChanged(ctx context.Context, ev TierChangeEvent)
}

// LogSink is the default sink: it just logs the event.
type LogSink struct {
	log *logrus.Entry
}

func NewLogSink(l *logrus.Logger) *LogSink {
	return &LogSink{log: l.WithFields(map[string]interface{}{
		"from": "events",
	})}
}

func (s *LogSink) TierChanged(_ context.Context, ev TierChangeEvent) {
	s.log.WithFields(map[string]interface{}{
		"player": ev.PlayerID,
		"sport":  ev.Sport,
		"fromT":  ev.From,
		"toT":    ev.To,
	}).Info("tier changed")
}

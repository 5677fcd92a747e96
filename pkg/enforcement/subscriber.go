package enforcement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// DefaultEventChannel is the Redis channel device agents publish
// foreground-app-changed events to.
const DefaultEventChannel = "craving_intervention:foreground_events"

// wireEvent is the JSON shape device agents publish.
type wireEvent struct {
	UserID           string `json:"userId"`
	AppID            string `json:"appId"`
	DeviceID         string `json:"deviceId,omitempty"`
	OccurredAtMillis int64  `json:"occurredAtMillis"`
}

// Subscriber feeds foreground-change events from the device message bus into
// the monitor. It runs independently of the gRPC ingress, so enforcement
// keeps working while no UI-facing request is in flight. The monitor and the
// rest of the system only share the durable block-list mirror, never
// in-memory UI state.
type Subscriber struct {
	client  *redis.Client
	monitor *Monitor
	channel string
}

// NewSubscriber creates a subscriber on the shared Redis client.
func NewSubscriber(client *redis.Client, monitor *Monitor, channel string) *Subscriber {
	if channel == "" {
		channel = DefaultEventChannel
	}
	return &Subscriber{
		client:  client,
		monitor: monitor,
		channel: channel,
	}
}

// Run subscribes and processes events until the context is cancelled.
// Malformed payloads are dropped and logged; the subscriber never stops over
// a bad event.
func (s *Subscriber) Run(ctx context.Context) error {
	sub := s.client.Subscribe(ctx, s.channel)
	defer sub.Close()

	// Fail fast if the subscription could not be established.
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	logrus.Infof("foreground event subscriber listening on %s", s.channel)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("foreground event subscriber stopping")
			return nil
		case msg, ok := <-ch:
			if !ok {
				logrus.Warn("foreground event subscription closed")
				return nil
			}
			s.handle(ctx, msg.Payload)
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, payload string) {
	var ev wireEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		logrus.Warnf("dropping malformed foreground event: %v", err)
		return
	}

	s.monitor.HandleForegroundEvent(ctx, Event{
		UserID:     ev.UserID,
		AppID:      ev.AppID,
		DeviceID:   ev.DeviceID,
		OccurredAt: time.UnixMilli(ev.OccurredAtMillis),
	})
}

// Package push consumes the backend's update notifications over redis
// pub/sub. Messages are treated purely as triggers: the listener invalidates
// cached roster snapshots and asks active tab sessions to re-validate through
// their normal fetch path. Payloads are never applied to held state directly.
package push

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channels the backend publishes on. The payload content is ignored.
const (
	ChannelPCs     = "icafe.pcs_update"
	ChannelMembers = "icafe.members_update"
)

type rosterInvalidator interface {
	Invalidate(ctx context.Context)
}

type sessionRefresher interface {
	RefreshActive(ctx context.Context)
}

type Listener struct {
	client   *redis.Client
	roster   rosterInvalidator
	sessions sessionRefresher
	logger   *log.Logger
}

func NewListener(client *redis.Client, roster rosterInvalidator, sessions sessionRefresher, logger *log.Logger) *Listener {
	return &Listener{client: client, roster: roster, sessions: sessions, logger: logger}
}

// Run subscribes and dispatches until ctx is cancelled. It returns ctx.Err()
// on shutdown and the subscription error otherwise.
func (l *Listener) Run(ctx context.Context) error {
	sub := l.client.Subscribe(ctx, ChannelPCs, ChannelMembers)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	l.logger.Printf("push: subscribed to %s, %s", ChannelPCs, ChannelMembers)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			l.logger.Printf("push: %s notification received", msg.Channel)
			l.roster.Invalidate(ctx)
			l.sessions.RefreshActive(ctx)
		}
	}
}

package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

const (
	burstEvery    = 10
	burstPause    = 10 * time.Second
	minSendPause  = 3 * time.Second
	sendPauseSpan = 2 * time.Second
)

// Sender splits outgoing text into fragments the remote side accepts and
// spaces them out so the account is not flagged for flooding.
type Sender struct {
	api    ports.MessageAPI
	clock  ports.Clock
	jitter func() time.Duration
}

func NewSender(api ports.MessageAPI, clock ports.Clock) *Sender {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Sender{
		api:   api,
		clock: clock,
		jitter: func() time.Duration {
			return rand.N(sendPauseSpan + 1)
		},
	}
}

// Send delivers text to toUIN. session.MsgID is advanced once per fragment.
func (s *Sender) Send(ctx context.Context, session *domain.Session, category domain.Category, toUIN int64, text string) error {
	for _, fragment := range domain.ChunkMessage(text, domain.MaxMessageBytes) {
		msgID := session.NextMsgID()
		if err := s.clock.Sleep(ctx, s.pause(msgID)); err != nil {
			return err
		}
		if err := s.api.Send(ctx, *session, category, toUIN, msgID, fragment); err != nil {
			return fmt.Errorf("send %s message to %d: %w", category, toUIN, err)
		}
	}

	return nil
}

func (s *Sender) pause(msgID int64) time.Duration {
	if msgID%burstEvery == 0 {
		return burstPause
	}
	return minSendPause + s.jitter()
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/qqbot-cli/internal/domain"
	"github.com/bnema/qqbot-cli/internal/ports"
)

const (
	defaultQueueSize      = 64
	defaultPollRetryDelay = 3 * time.Second
)

var errMalformedCommand = errors.New("malformed command")

type BotOptions struct {
	QueueSize int
	// PollRetryDelay is the pause after a poll failure that is not fatal.
	PollRetryDelay time.Duration
	Clock          ports.Clock
	Logger         *slog.Logger
	Metrics        ports.Metrics
}

type commandHandler func(ctx context.Context, cmd domain.Command) (string, error)

type queueItem struct {
	event domain.PollEvent
	err   error
}

// Bot answers controller commands received over the long-poll channel. A
// poller goroutine feeds events in arrival order to the dispatcher, which
// runs on the caller's goroutine and owns the session and the directory.
type Bot struct {
	messages    ports.MessageAPI
	directories *DirectoryService
	sender      *Sender

	session   domain.Session
	directory *domain.Directory

	queueSize      int
	pollRetryDelay time.Duration
	clock          ports.Clock
	logger         *slog.Logger
	metrics        ports.Metrics

	handlers map[domain.CommandKind]commandHandler
	stopped  atomic.Bool
}

func NewBot(session domain.Session, directory *domain.Directory, messages ports.MessageAPI, directories *DirectoryService, sender *Sender, opts BotOptions) *Bot {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.PollRetryDelay <= 0 {
		opts.PollRetryDelay = defaultPollRetryDelay
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = ports.NopMetrics{}
	}

	b := &Bot{
		messages:       messages,
		directories:    directories,
		sender:         sender,
		session:        session,
		directory:      directory,
		queueSize:      opts.QueueSize,
		pollRetryDelay: opts.PollRetryDelay,
		clock:          opts.Clock,
		logger:         opts.Logger,
		metrics:        opts.Metrics,
	}
	b.handlers = map[domain.CommandKind]commandHandler{
		domain.CommandHelp:      b.help,
		domain.CommandList:      b.list,
		domain.CommandSend:      b.send,
		domain.CommandRefetch:   b.refetch,
		domain.CommandStop:      b.stop,
		domain.CommandMalformed: b.malformed,
	}

	return b
}

func (b *Bot) Session() domain.Session {
	return b.session
}

func (b *Bot) Directory() *domain.Directory {
	return b.directory
}

func (b *Bot) Stopped() bool {
	return b.stopped.Load()
}

// Run blocks until a -stop command, a fatal error or ctx cancellation, and
// waits for the poller to return before it does. Cancellation is a normal
// stop and returns nil.
func (b *Bot) Run(ctx context.Context) error {
	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()

	queue := make(chan queueItem, b.queueSize)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(queue)
		b.pollLoop(pollCtx, b.session, queue, done)
	}()

	b.logger.Info("QQBot started, send -help to this account from another one to operate it",
		"nick", b.session.Nick, "qq", b.session.QQ)

	err := b.dispatchLoop(ctx, queue)

	close(done)
	if err != nil {
		cancelPoll()
	}
	wg.Wait()

	switch {
	case err != nil:
		b.logger.Error("QQBot exited abnormally", "error", err)
		return err
	case b.stopped.Load():
		b.logger.Info("QQBot stopped")
	default:
		b.logger.Info("QQBot interrupted")
	}

	return nil
}

func (b *Bot) dispatchLoop(ctx context.Context, queue <-chan queueItem) error {
	for item := range queue {
		if item.err != nil {
			return fmt.Errorf("poll messages: %w", item.err)
		}
		if err := b.Dispatch(ctx, item.event); err != nil {
			return err
		}
		if b.stopped.Load() {
			return nil
		}
	}

	return nil
}

// pollLoop works on its own copy of the session; the fields it reads never
// change after login.
func (b *Bot) pollLoop(ctx context.Context, session domain.Session, queue chan<- queueItem, done <-chan struct{}) {
	enqueue := func(item queueItem) bool {
		select {
		case queue <- item:
			return true
		case <-done:
			return false
		}
	}

	for !b.stopped.Load() {
		event, err := b.pollOnce(ctx, session)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if domain.IsFatal(err) {
				enqueue(queueItem{err: err})
				return
			}
			b.logger.Warn("poll failed, ignored", "error", err)
			if err := b.clock.Sleep(ctx, b.pollRetryDelay); err != nil {
				return
			}
			continue
		}

		b.metrics.ObservePoll(string(event.Category))
		if event.Empty() {
			continue
		}
		if !enqueue(queueItem{event: event}) {
			return
		}
	}
}

func (b *Bot) pollOnce(ctx context.Context, session domain.Session) (event domain.PollEvent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("poll panicked: %v", r)
		}
	}()

	return b.messages.Poll(ctx, session)
}

// Dispatch executes the command carried by event and replies to the
// conversation it came from. Only fatal errors are returned; any other
// failure is logged and the event is dropped.
func (b *Bot) Dispatch(ctx context.Context, event domain.PollEvent) error {
	reply, err := b.execute(ctx, event)
	if err != nil {
		if domain.IsFatal(err) {
			return err
		}

		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Reply == "" {
			b.logger.Warn("command failed, ignored", "from", event.FromUIN, "error", err)
			return nil
		}
		b.logger.Info("command rejected", "from", event.FromUIN, "error", err)
		reply = cmdErr.Reply
	}

	if reply == "" {
		return nil
	}

	if err := b.sender.Send(ctx, &b.session, event.Category, event.FromUIN, reply); err != nil {
		if domain.IsFatal(err) {
			return err
		}
		b.logger.Warn("reply failed, ignored", "to", event.FromUIN, "error", err)
	}

	return nil
}

func (b *Bot) execute(ctx context.Context, event domain.PollEvent) (reply string, err error) {
	cmd := domain.ParseCommand(event.Text)

	defer func() {
		if r := recover(); r != nil {
			err = &CommandError{Kind: cmd.Kind, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil && !domain.IsFatal(err) {
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				err = &CommandError{Kind: cmd.Kind, Err: err}
			}
		}
		if cmd.Kind != domain.CommandUnrecognized {
			b.metrics.ObserveCommand(string(cmd.Kind), err == nil)
		}
	}()

	handler, ok := b.handlers[cmd.Kind]
	if !ok {
		return "", nil
	}

	b.logger.Debug("command received", "kind", string(cmd.Kind), "category", string(event.Category),
		"from", event.FromUIN, "name", b.contactName(event.Category, event.FromUIN), "sender", event.SenderUIN)

	return handler(ctx, cmd)
}

// contactName is empty for conversations that joined after the last refetch.
func (b *Bot) contactName(category domain.Category, uin int64) string {
	if b.directory == nil {
		return ""
	}
	contact, err := b.directory.ByUIN(category, uin)
	if err != nil {
		return ""
	}
	return contact.Name
}

func (b *Bot) help(context.Context, domain.Command) (string, error) {
	return helpReply, nil
}

func (b *Bot) list(_ context.Context, cmd domain.Command) (string, error) {
	return b.directory.Listing(cmd.Category), nil
}

func (b *Bot) send(ctx context.Context, cmd domain.Command) (string, error) {
	contact, err := b.directory.ByPublicID(cmd.Category, cmd.PublicID)
	if err != nil {
		return "", &CommandError{Kind: cmd.Kind, Reply: unknownRecipientReply, Err: err}
	}

	if err := b.sender.Send(ctx, &b.session, cmd.Category, contact.UIN, cmd.Text); err != nil {
		return "", err
	}

	return sentReply, nil
}

func (b *Bot) refetch(ctx context.Context, _ domain.Command) (string, error) {
	directory, err := b.directories.Fetch(ctx, b.session)
	if err != nil {
		return "", err
	}
	nick, err := b.directories.FetchNick(ctx, b.session)
	if err != nil {
		return "", err
	}

	b.directory = directory
	b.session.Nick = nick

	return refetchedReply, nil
}

func (b *Bot) stop(context.Context, domain.Command) (string, error) {
	b.stopped.Store(true)
	return stoppedReply, nil
}

func (b *Bot) malformed(_ context.Context, cmd domain.Command) (string, error) {
	return "", &CommandError{Kind: cmd.Kind, Reply: malformedReply, Err: errMalformedCommand}
}

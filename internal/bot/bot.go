// Package bot is the Telegram transport: it consumes updates via long
// polling, registers senders as chat members, and dispatches parsed
// actions to the engine. It knows nothing about todo semantics beyond the
// action types.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/nhle/chorebot/internal/engine"
	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/roster"
)

// Bot wires the Telegram API to the engine.
type Bot struct {
	api    *tgbotapi.BotAPI
	roster *roster.Registry
	engine *engine.Engine
	log    *zap.SugaredLogger
}

// New creates a Bot.
func New(api *tgbotapi.BotAPI, r *roster.Registry, e *engine.Engine, log *zap.SugaredLogger) *Bot {
	return &Bot{
		api:    api,
		roster: r,
		engine: e,
		log:    log,
	}
}

// Run consumes Telegram updates until ctx is cancelled. No inbound
// message can stop the loop; every failure is logged and skipped.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage registers the sender, parses the text into an action, and
// sends the rendered reply. The sender is registered before dispatch so
// that the very first /add in a fresh chat already has an assignee pool.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	var actor *model.ChatMember
	if msg.From != nil {
		name := msg.From.UserName
		if name == "" {
			name = msg.From.FirstName
		}
		m, err := b.roster.Register(ctx, chatID, msg.From.ID, name)
		if err != nil {
			b.log.Errorw("registering chat member failed", "chat_id", chatID, "error", err)
		} else {
			actor = m
		}
	}

	action := ParseAction(msg.Text)

	var reply string
	switch action.Kind {
	case KindStart:
		reply = startText
	case KindHelp:
		reply = helpText
	case KindAddTodo:
		reply = b.engine.AddTodo(ctx, chatID, action.Description, action.IntervalDays)
	case KindListTodos:
		reply = b.engine.ListTodos(ctx, chatID)
	case KindDeleteTodo:
		reply = b.engine.DeleteTodo(ctx, chatID, action.Position)
	case KindCheckTodo:
		reply = b.engine.CheckTodo(ctx, chatID, action.Position, actor)
	case KindUnknown:
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, reply)); err != nil {
		b.log.Errorw("sending reply failed", "chat_id", chatID, "error", err)
	}
}

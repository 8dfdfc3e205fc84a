package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"slowka/internal/domain"
	"slowka/internal/middleware"
	"slowka/internal/store"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const botLookupTimeout = 5 * time.Second

var btnMore = tele.Btn{
	Unique: "more",
	Text:   "🔄 Next word",
}

// Bot serves the learn flow over Telegram
type Bot struct {
	bot    *tele.Bot
	words  store.WordStore
	logger *zap.Logger
}

// NewBot creates a Telegram front end over words
func NewBot(bot *tele.Bot, words store.WordStore, logger *zap.Logger) *Bot {
	return &Bot{
		bot:    bot,
		words:  words,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (b *Bot) RegisterHandlers() {
	b.bot.Use(middleware.BotLogger(b.logger))

	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/learn", b.handleLearn)
	b.bot.Handle(&btnMore, b.handleLearn)
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send("Cześć! Send /learn to get a random word.", learnMarkup())
}

// handleLearn sends one random pair, editing the previous one when the button was pressed
func (b *Bot) handleLearn(c tele.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), botLookupTimeout)
	defer cancel()

	word, err := b.words.Random(ctx)
	if errors.Is(err, domain.ErrEmptyStore) {
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "There are no words to learn yet.", ShowAlert: true})
		}
		return c.Send("There are no words to learn yet.")
	}
	if err != nil {
		return fmt.Errorf("failed to get random word: %w", err)
	}

	text := formatPair(word)
	markup := learnMarkup()

	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		// the same pair drawn twice in a row leaves the message unchanged
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		b.logger.Warn("Failed to edit message, sending new", zap.Error(err))
		if ackErr := c.Respond(); ackErr != nil {
			b.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

func formatPair(w domain.WordPair) string {
	return fmt.Sprintf("🇵🇱 %s\n🇬🇧 %s", w.Polish(), w.English())
}

func learnMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMore))
	return menu
}

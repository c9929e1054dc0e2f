// Package telegram delivers messages through the Telegram Bot API.
package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"eventradar/config"
	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v4"
)

// permanentErrors are Bot API answers meaning the chat will never accept messages again.
var permanentErrors = []error{
	tele.ErrBlockedByUser,
	tele.ErrUserIsDeactivated,
	tele.ErrChatNotFound,
	tele.ErrNotStartedByUser,
}

// Channel sends plain-text messages to chat IDs, paced by a shared limiter.
type Channel struct {
	bot     *tele.Bot
	limiter *rate.Limiter
	logger  *slog.Logger
}

var _ service.DeliveryChannel = (*Channel)(nil)

// NewChannel creates a Telegram channel. The bot is created offline so startup never calls the API.
func NewChannel(cfg *config.TelegramConfig, logger *slog.Logger) (*Channel, error) {
	return newChannel(cfg, tele.Settings{
		Token:   cfg.Token,
		Offline: true,
	}, logger)
}

func newChannel(cfg *config.TelegramConfig, settings tele.Settings, logger *slog.Logger) (*Channel, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}

	bot, err := tele.NewBot(settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Channel{
		bot:     bot,
		limiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
		logger:  logger,
	}, nil
}

// Channel returns the channel tag
func (c *Channel) Channel() entity.Channel {
	return entity.ChannelTelegram
}

// Send delivers text to the chat identified by address
func (c *Channel) Send(ctx context.Context, address, text string) error {
	chatID, err := strconv.ParseInt(strings.TrimSpace(address), 10, 64)
	if err != nil {
		return service.NewPermanentDeliveryError(errors.Wrapf(err, "invalid chat id %q", address))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return service.NewTransientDeliveryError(err)
	}

	_, err = c.bot.Send(tele.ChatID(chatID), text, &tele.SendOptions{DisableWebPagePreview: true})
	if err == nil {
		return nil
	}

	if isPermanent(err) {
		return service.NewPermanentDeliveryError(err)
	}

	return service.NewTransientDeliveryError(err)
}

func isPermanent(err error) bool {
	for _, target := range permanentErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "forbidden") || strings.Contains(msg, "chat not found")
}

package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// BotLogger logs every bot update and keeps handler errors from reaching the poller
func BotLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			logger.Debug("Bot update",
				zap.Int64("user_id", userID),
				zap.String("text", c.Text()),
			)

			if err := next(c); err != nil {
				logger.Error("Bot handler failed",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
				return c.Send("Something went wrong. Try again later.")
			}
			return nil
		}
	}
}

package telegram

import (
	"context"
	"fmt"
	"html"
	"time"
)

// Reporter posts unexpected server errors to an alert chat.
type Reporter struct {
	bot     *Bot
	chatID  int64
	service string
	now     func() time.Time
}

// NewReporter creates a Reporter that tags every alert with service.
func NewReporter(bot *Bot, chatID int64, service string) *Reporter {
	return &Reporter{
		bot:     bot,
		chatID:  chatID,
		service: service,
		now:     time.Now,
	}
}

// ReportBug sends msg to the alert chat.
func (r *Reporter) ReportBug(ctx context.Context, msg string) error {
	text := fmt.Sprintf("<b>[%s] server error</b>\n<i>%s</i>\n<pre>%s</pre>",
		html.EscapeString(r.service),
		r.now().UTC().Format(time.RFC3339),
		html.EscapeString(msg),
	)
	return r.bot.SendMessageWithMode(ctx, r.chatID, text, "HTML")
}

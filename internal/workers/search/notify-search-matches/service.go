// internal/workers/search/notify-search-matches/service.go
package notifysearchmatches

import (
	"context"
	"fmt"
	"html"
	"strings"

	"rental-workers/internal/common/logger"
	"rental-workers/internal/common/metrics"
	"rental-workers/internal/common/validation"
	"rental-workers/internal/models"
)

// Notifier delivers match messages over the enabled channels. A failed channel
// does not stop the others and is reported in the result, not as an error:
// the match counter has already been bumped and a job retry would bump it twice.
type Notifier struct {
	config *Config
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewNotifier(config *Config, email EmailSender, sms SMSSender, log logger.Logger) *Notifier {
	return &Notifier{config: config, email: email, sms: sms, logger: log}
}

func (n *Notifier) Notify(ctx context.Context, search *models.SavedSearch, input *Input) []Delivery {
	subject, text, htmlBody := n.compose(search, input)

	deliveries := []Delivery{
		n.deliver(ctx, "email", n.config.EmailEnabled && n.email != nil, input.Email, validation.ValidateEmail,
			func(to string) (string, error) { return n.email.SendEmail(ctx, to, subject, text, htmlBody) }),
		n.deliver(ctx, "sms", n.config.SMSEnabled && n.sms != nil, input.Phone, validation.ValidatePhone,
			func(to string) (string, error) { return n.sms.SendSMS(ctx, to, text) }),
	}
	return deliveries
}

func (n *Notifier) deliver(_ context.Context, channel string, enabled bool, to string, valid func(string) bool, send func(string) (string, error)) Delivery {
	d := Delivery{Channel: channel, Status: StatusSkipped}
	if !enabled || to == "" {
		return d
	}
	if !valid(to) {
		d.Error = "invalid recipient"
		metrics.NotificationsSent.WithLabelValues(channel, string(StatusSkipped)).Inc()
		return d
	}

	id, err := send(to)
	if err != nil {
		d.Status = StatusFailed
		d.Error = err.Error()
		n.logger.Warn("match notification failed", map[string]interface{}{
			"channel": channel,
			"error":   err,
		})
	} else {
		d.Status = StatusSent
		d.MessageID = id
	}
	metrics.NotificationsSent.WithLabelValues(channel, string(d.Status)).Inc()
	return d
}

func (n *Notifier) compose(search *models.SavedSearch, input *Input) (subject, text, htmlBody string) {
	noun := "listings match"
	if input.MatchCount == 1 {
		noun = "listing matches"
	}
	subject = fmt.Sprintf("%d new %s your search \"%s\"", input.MatchCount, noun, search.Name)

	preview := input.Matches
	if n.config.PreviewCount > 0 && len(preview) > n.config.PreviewCount {
		preview = preview[:n.config.PreviewCount]
	}

	var tb, hb strings.Builder
	tb.WriteString(subject)
	hb.WriteString("<p>" + html.EscapeString(subject) + "</p>")
	if len(preview) > 0 {
		hb.WriteString("<ul>")
		for _, p := range preview {
			line := p.Title
			if p.Location != "" {
				line += " (" + p.Location + ")"
			}
			tb.WriteString("\n- " + line)
			hb.WriteString("<li>" + html.EscapeString(line) + "</li>")
		}
		hb.WriteString("</ul>")
	}
	return subject, tb.String(), hb.String()
}

package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier pushes lifecycle alerts to the operations chat so admins
// see new and resolved tickets without polling the dashboard. User-facing
// notifications (password resets) are not mirrored here.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to start telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) TicketSubmitted(email, name, complaintType, code string) {
	t.send(fmt.Sprintf("🎫 New %s ticket from %s <%s>, code %s", complaintType, name, email, code))
}

func (t *TelegramNotifier) PersonnelAssigned(email, name, complaintType, personnelName, personnelContact string) {
	t.send(fmt.Sprintf("👷 %s assigned to %s's %s ticket", personnelName, name, complaintType))
}

func (t *TelegramNotifier) TicketResolved(email, name, complaintType string) {
	t.send(fmt.Sprintf("✅ %s ticket for %s resolved", complaintType, name))
}

// PasswordReset is intentionally not forwarded to the admin chat; reset
// links are secrets.
func (t *TelegramNotifier) PasswordReset(email, name, resetLink string) {}

func (t *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	go func() {
		if _, err := t.bot.Send(msg); err != nil {
			log.Printf("ERROR: failed to send telegram alert: %v", err)
		}
	}()
}

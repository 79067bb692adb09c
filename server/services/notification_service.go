package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SergioFerreira2020/GestorLotes/stock"
)

// Notifier pushes an alert message to whoever watches the stock.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// TelegramNotifier sends alerts to the configured chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Notify sends one message to the chat.
func (t *TelegramNotifier) Notify(ctx context.Context, message string) error {
	msg := tgbotapi.NewMessage(t.chatID, message)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram alert: %w", err)
	}
	return nil
}

// NopNotifier drops every alert; used when no channel is configured.
type NopNotifier struct{}

// Notify discards the message.
func (NopNotifier) Notify(ctx context.Context, message string) error {
	return nil
}

// NotificationService watches the stock ledger and raises one alert per
// attribute key when its count falls to the threshold. The alert re-arms
// once the count climbs back above the threshold, so a key alerts again on
// the next drop but never floods while it stays low.
type NotificationService struct {
	ledger    *stock.Ledger
	notifier  Notifier
	threshold int
	logger    *slog.Logger

	mu      sync.Mutex
	alerted map[string]bool
}

// NewNotificationService creates the low-stock alerting service.
func NewNotificationService(ledger *stock.Ledger, notifier Notifier, threshold int, logger *slog.Logger) *NotificationService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		ledger:    ledger,
		notifier:  notifier,
		threshold: threshold,
		logger:    logger,
		alerted:   make(map[string]bool),
	}
}

// Threshold returns the configured low-stock limit.
func (ns *NotificationService) Threshold() int {
	return ns.threshold
}

// LowStock returns the current low-stock report.
func (ns *NotificationService) LowStock(ctx context.Context) ([]stock.LowEntry, error) {
	return ns.ledger.ScanLow(ctx, ns.threshold)
}

// CheckLowStock scans the ledger and pushes an alert for every key that just
// crossed the threshold.
func (ns *NotificationService) CheckLowStock(ctx context.Context) error {
	low, err := ns.ledger.ScanLow(ctx, ns.threshold)
	if err != nil {
		return err
	}

	lowKeys := make(map[string]bool, len(low))
	for _, entry := range low {
		lowKeys[entry.Key] = true
	}

	ns.mu.Lock()
	// Re-arm keys that recovered.
	for key := range ns.alerted {
		if !lowKeys[key] {
			delete(ns.alerted, key)
		}
	}

	toAlert := []stock.LowEntry{}
	for _, entry := range low {
		if !ns.alerted[entry.Key] {
			ns.alerted[entry.Key] = true
			toAlert = append(toAlert, entry)
		}
	}
	ns.mu.Unlock()

	for _, entry := range toAlert {
		message := fmt.Sprintf("⚠️ Stock baixo: %s — restam %d (limite %d)",
			entry.Label(), entry.Count, ns.threshold)

		if err := ns.notifier.Notify(ctx, message); err != nil {
			// The key stays armed after a failed push.
			ns.logger.Error("failed to push low-stock alert",
				"key", entry.Key,
				"error", err,
			)
			continue
		}

		ns.logger.Info("low-stock alert sent", "key", entry.Key, "count", entry.Count)
	}

	return nil
}

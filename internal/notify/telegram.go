package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// TelegramDispatcher delivers notifications through a Telegram bot chat.
// Permission maps onto configuration: a dispatcher with both a bot token and a
// chat id is granted, anything else is denied.
type TelegramDispatcher struct {
	botToken string
	chatID   string
	client   *http.Client

	mu         sync.Mutex
	permission Permission
}

func NewTelegramDispatcher(botToken string, chatID string) *TelegramDispatcher {
	return &TelegramDispatcher{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		permission: PermissionDefault,
	}
}

// NewTelegramDispatcherFromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID.
func NewTelegramDispatcherFromEnv() *TelegramDispatcher {
	return NewTelegramDispatcher(os.Getenv("TELEGRAM_BOT_TOKEN"), os.Getenv("TELEGRAM_CHAT_ID"))
}

func (dispatcher *TelegramDispatcher) RequestPermission() Permission {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()

	if dispatcher.permission != PermissionDefault {
		return dispatcher.permission
	}

	if dispatcher.botToken != "" && dispatcher.chatID != "" {
		dispatcher.permission = PermissionGranted
	} else {
		dispatcher.permission = PermissionDenied
	}
	return dispatcher.permission
}

// Show posts the notification to the configured chat. Failures are logged and
// swallowed; nothing upstream depends on delivery.
func (dispatcher *TelegramDispatcher) Show(title string, body string, opts Options) {
	if dispatcher.RequestPermission() != PermissionGranted {
		return
	}
	if opts.Silent {
		return
	}

	message := body
	if strings.TrimSpace(title) != "" {
		message = fmt.Sprintf("%s\n%s", title, body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := dispatcher.send(ctx, message); err != nil {
		log.Printf("notify: telegram send failed: %v", err)
	}
}

func (dispatcher *TelegramDispatcher) send(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", dispatcher.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", dispatcher.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := dispatcher.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(responseBody))
	}

	return nil
}

package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIBase = "https://api.line.me"

// ErrDeliveryFailed — уведомление не доставлено. Отличаем от ошибок хранилища:
// запись в очереди всё равно будет переведена в called, но человек мог не узнать,
// что подошла его очередь.
var ErrDeliveryFailed = errors.New("не удалось доставить сообщение LINE")

// Message — одно текстовое сообщение LINE Messaging API.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextMessage собирает текстовое сообщение.
func TextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

// Notifier — то, что нужно обработчикам от канала уведомлений.
type Notifier interface {
	Push(ctx context.Context, to string, messages []Message) error
	Reply(ctx context.Context, replyToken string, messages []Message) error
}

// Client ходит в LINE Messaging API (endpoint'ы /v2/bot/message/push и reply).
type Client struct {
	token   string
	apiBase string
	http    *http.Client
}

func NewClient(channelToken string) *Client {
	return &Client{
		token:   channelToken,
		apiBase: defaultAPIBase,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Push отправляет сообщения пользователю вне контекста входящего события.
func (c *Client) Push(ctx context.Context, to string, messages []Message) error {
	body := map[string]interface{}{"to": to, "messages": messages}
	return c.post(ctx, "/v2/bot/message/push", body)
}

// Reply отвечает на входящее событие. Токен одноразовый и живёт недолго.
func (c *Client) Reply(ctx context.Context, replyToken string, messages []Message) error {
	body := map[string]interface{}{"replyToken": replyToken, "messages": messages}
	return c.post(ctx, "/v2/bot/message/reply", body)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: LINE ответил %d: %s", ErrDeliveryFailed, resp.StatusCode, detail)
	}
	return nil
}

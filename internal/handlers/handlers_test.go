package handlers

import (
	"context"
	"net/http/httptest"
	"sync"

	"linequeue/internal/line"
	"linequeue/internal/queue"
	"linequeue/internal/sheetstore"
	"linequeue/internal/ws"

	"github.com/gin-gonic/gin"
)

// sentMessage — одно отправленное фейковым каналом сообщение.
type sentMessage struct {
	To         string
	ReplyToken string
	Messages   []line.Message
}

// fakeNotifier записывает отправки вместо похода в LINE.
type fakeNotifier struct {
	mu      sync.Mutex
	pushes  []sentMessage
	replies []sentMessage
	pushErr error
}

func (f *fakeNotifier) Push(ctx context.Context, to string, messages []line.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, sentMessage{To: to, Messages: messages})
	return nil
}

func (f *fakeNotifier) Reply(ctx context.Context, replyToken string, messages []line.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, sentMessage{ReplyToken: replyToken, Messages: messages})
	return nil
}

func (f *fakeNotifier) sentPushes() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.pushes...)
}

func (f *fakeNotifier) sentReplies() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.replies...)
}

// setupTestServer собирает роутер так же, как main, но с фейковыми
// хранилищем и каналом уведомлений.
func setupTestServer(store sheetstore.RowStore, notifier line.Notifier, channelSecret string) (*httptest.Server, *queue.Repository) {
	gin.SetMode(gin.TestMode)

	repo := queue.NewRepository(store, "Queue")
	hub := ws.NewHub()
	go hub.Run()

	h := New(repo, notifier, queue.NewMutexLocker(), hub, channelSecret)

	r := gin.New()
	r.POST("/webhook", h.WebhookHandler)
	api := r.Group("/api/queue")
	{
		api.POST("/next", h.CallNextHandler)
		api.GET("/status", h.QueueStatusHandler)
		api.GET("/ws", hub.QueueWebSocketHandler)
	}

	return httptest.NewServer(r), repo
}

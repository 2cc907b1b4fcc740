package tasks

import (
	"context"
	"log"
	"time"

	"linequeue/internal/queue"
	"linequeue/internal/response"
	"linequeue/internal/ws"

	"github.com/robfig/cron/v3"
)

// BroadcastQueueSnapshot читает очередь и рассылает срез всем подключённым
// дашбордам, чтобы им не приходилось опрашивать HTTP-эндпоинт.
func BroadcastQueueSnapshot(repo *queue.Repository, hub *ws.Hub) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := repo.List(ctx)
	if err != nil {
		// Разовый сбой чтения не повод останавливать планировщик.
		log.Println("Ошибка чтения очереди для рассылки среза:", err)
		return
	}

	hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "queue_snapshot",
		Data: response.StatusResponse{
			Count: len(entries),
			List:  entries,
		},
	})
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler(repo *queue.Repository, hub *ws.Hub) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Срез очереди для дашбордов раз в минуту.
	_, err := c.AddFunc("0 * * * * *", func() { BroadcastQueueSnapshot(repo, hub) })
	if err != nil {
		log.Println("Ошибка запуска cron-задачи BroadcastQueueSnapshot:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}

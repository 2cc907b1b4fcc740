package handlers

import (
	"linequeue/internal/line"
	"linequeue/internal/queue"
	"linequeue/internal/ws"
)

// Handler держит зависимости обработчиков. Собирается один раз в main
// и передаётся в роутер явно — никаких глобальных клиентов.
type Handler struct {
	repo     *queue.Repository
	notifier line.Notifier
	locker   queue.Locker
	hub      *ws.Hub
	// Секрет канала LINE для проверки подписи вебхука. Пустой — не проверяем.
	channelSecret string
}

func New(repo *queue.Repository, notifier line.Notifier, locker queue.Locker, hub *ws.Hub, channelSecret string) *Handler {
	return &Handler{
		repo:          repo,
		notifier:      notifier,
		locker:        locker,
		hub:           hub,
		channelSecret: channelSecret,
	}
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"linequeue/internal/line"
	"linequeue/internal/queue"
	"linequeue/internal/response"
	"linequeue/internal/ws"

	"github.com/gin-gonic/gin"
)

// Текст уведомления о подошедшей очереди.
const callTextFormat = "【My Game Event】\n%s さん\n今があなたの順番です！会場に来てください。"

// CallNextHandler обрабатывает запрос на вызов следующего из очереди
// @Summary		Вызов следующего
// @Description	Находит первую запись со статусом waiting, уведомляет пользователя и переводит запись в called
// @Tags			queue
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.DispatchResponse	"Вызван следующий или очередь пуста"
// @Failure		409	{object}	response.ErrorResponse	"Параллельный вызов (DISPATCH_BUSY, ALREADY_CALLED)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка хранилища (SHEETS_ERROR)"
// @Router			/api/queue/next [post]
func (h *Handler) CallNextHandler(c *gin.Context) {
	ctx := c.Request.Context()

	// Весь цикл чтение-уведомление-запись выполняется под блокировкой:
	// таблица не умеет транзакций, и два одновременных вызова без неё
	// уведомили бы одного человека дважды.
	release, err := h.locker.Acquire(ctx)
	if err != nil {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "DISPATCH_BUSY",
			Message: "Вызов уже выполняется, повторите позже",
		})
		return
	}
	defer release()

	entry, err := h.repo.FindNextWaiting(ctx)
	if errors.Is(err, queue.ErrNoWaiting) {
		// Пустая очередь — нормальное состояние, а не ошибка.
		c.JSON(http.StatusOK, response.DispatchResponse{Message: "No waiting users"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "SHEETS_ERROR",
			Message: "Не удалось прочитать очередь",
			Details: err.Error(),
		})
		return
	}

	// Сначала уведомляем, потом фиксируем статус. Переход записывается в любом
	// случае, но при неудачной доставке с notified=false: человек мог не узнать,
	// что подошла его очередь, и это должно быть видно в данных и логах.
	notified := false
	if entry.LineUserID == "" {
		// Отдельный вид ошибки: переход фиксируем, но уведомлять некого.
		log.Printf("У записи %s (%s) нет LINE userId, уведомление не отправлено", entry.ID, entry.Name)
	} else {
		msg := line.TextMessage(fmt.Sprintf(callTextFormat, entry.Name))
		if err := h.notifier.Push(ctx, entry.LineUserID, []line.Message{msg}); err != nil {
			log.Printf("Уведомление для %s не доставлено: %v", entry.Name, err)
		} else {
			notified = true
		}
	}

	called, err := h.repo.MarkCalled(ctx, entry.ID, notified)
	if errors.Is(err, queue.ErrAlreadyCalled) {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "ALREADY_CALLED",
			Message: "Запись уже вызвана параллельным запросом",
		})
		return
	}
	if errors.Is(err, queue.ErrEntryNotFound) {
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "ENTRY_NOT_FOUND",
			Message: "Запись исчезла из листа между чтением и записью",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "SHEETS_ERROR",
			Message: "Не удалось обновить статус записи",
			Details: err.Error(),
		})
		return
	}

	h.hub.BroadcastWSMessage(ws.WSMessage{
		EventType: "user_called",
		Data:      called,
	})

	c.JSON(http.StatusOK, response.DispatchResponse{
		Message:  fmt.Sprintf("%s さんを呼び出しました", called.Name),
		Called:   &called,
		Notified: notified,
	})
}

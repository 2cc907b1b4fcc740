package handlers

import (
	"log"
	"net/http"
	"strings"

	"linequeue/internal/line"
	"linequeue/internal/response"
	"linequeue/internal/ws"

	"github.com/gin-gonic/gin"
)

// Тексты сообщений пользователям LINE.
const (
	welcomeText = "友だち登録ありがとうございます！フルネームを送ってください。"
	confirmText = "受け取りました: "
)

// WebhookHandler обрабатывает вебхук платформы LINE
// @Summary		Вебхук LINE
// @Description	Принимает события follow и message, ставит пользователей в очередь
// @Tags			webhook
// @Accept			json
// @Produce		json
// @Param			X-Line-Signature	header		string	false	"Подпись тела запроса"
// @Success		200	{object}	map[string]bool			"Подтверждение приёма"
// @Failure		400	{object}	response.ErrorResponse	"Неверная подпись (INVALID_SIGNATURE)"
// @Router			/webhook [post]
func (h *Handler) WebhookHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Println("Ошибка чтения тела вебхука:", err)
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	if h.channelSecret != "" {
		signature := c.GetHeader("X-Line-Signature")
		if !line.ValidateSignature(h.channelSecret, body, signature) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "INVALID_SIGNATURE",
				Message: "Подпись вебхука не прошла проверку",
			})
			return
		}
	}

	req, err := line.ParseWebhook(body)
	if err != nil {
		// Платформе всегда отвечаем 200, иначе она начнёт слать повторы.
		log.Println("Ошибка разбора тела вебхука:", err)
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	// События обрабатываем по порядку; сбой одного события
	// не должен прервать обработку остальных в пачке.
	for _, ev := range req.Events {
		if err := h.handleEvent(c, ev); err != nil {
			log.Printf("Ошибка обработки события %s: %v", ev.Type, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) handleEvent(c *gin.Context, ev line.Event) error {
	ctx := c.Request.Context()

	switch {
	case ev.Type == line.EventTypeFollow:
		uid := ev.UserID()
		if uid == "" {
			// Событие без отправителя молча пропускаем.
			return nil
		}
		return h.notifier.Push(ctx, uid, []line.Message{line.TextMessage(welcomeText)})

	case ev.IsText():
		name := strings.TrimSpace(ev.Message.Text)
		uid := ev.UserID()
		if name == "" || uid == "" {
			// Пустое имя не ставим в очередь и ничего не отвечаем.
			return nil
		}

		entry, err := h.repo.Enqueue(ctx, name, uid)
		if err != nil {
			return err
		}

		h.hub.BroadcastWSMessage(ws.WSMessage{
			EventType: "user_joined",
			Data:      entry,
		})

		messages := []line.Message{line.TextMessage(confirmText + name)}
		if ev.ReplyToken != "" {
			return h.notifier.Reply(ctx, ev.ReplyToken, messages)
		}
		return h.notifier.Push(ctx, uid, messages)
	}

	return nil
}

package handlers

import (
	"net/http"

	"linequeue/internal/response"

	"github.com/gin-gonic/gin"
)

// QueueStatusHandler обрабатывает запрос на получение состояния очереди
// @Summary		Состояние очереди
// @Description	Возвращает число записей и полный упорядоченный список очереди
// @Tags			queue
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.StatusResponse	"Текущее состояние очереди"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка хранилища (SHEETS_ERROR)"
// @Router			/api/queue/status [get]
func (h *Handler) QueueStatusHandler(c *gin.Context) {
	entries, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "SHEETS_ERROR",
			Message: "Не удалось прочитать очередь",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.StatusResponse{
		Count: len(entries),
		List:  entries,
	})
}

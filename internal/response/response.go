package response

import "linequeue/internal/models"

// MessageResponse представляет успешный ответ API с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message" example:"Пользователь вызван"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: SHEETS_ERROR
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Хранилище очереди недоступно
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: чтение диапазона Queue!A2:I: timeout
	Details string `json:"details,omitempty"`
}

// StatusResponse представляет проекцию очереди для дашборда
type StatusResponse struct {
	Count int                 `json:"count"`
	List  []models.QueueEntry `json:"list"`
}

// DispatchResponse представляет результат вызова следующего из очереди
type DispatchResponse struct {
	// Сообщение о результате
	// example: Идзуми вызван(а)
	Message string `json:"message"`

	// Вызванная запись; отсутствует, если очередь пуста
	Called *models.QueueEntry `json:"called,omitempty"`

	// Было ли доставлено уведомление вызванному
	Notified bool `json:"notified"`
}

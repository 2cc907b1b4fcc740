package line

import "encoding/json"

// Типы событий вебхука, которые обрабатывает бот.
const (
	EventTypeFollow  = "follow"
	EventTypeMessage = "message"

	MessageTypeText = "text"
)

// WebhookRequest — тело POST-запроса от платформы LINE: упорядоченный список событий.
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event — одно событие вебхука. ReplyToken и Message присутствуют не у всех типов.
type Event struct {
	Type       string   `json:"type"`
	ReplyToken string   `json:"replyToken"`
	Source     *Source  `json:"source"`
	Message    *Message `json:"message"`
	Timestamp  int64    `json:"timestamp"`
}

// Source — отправитель события.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
}

// UserID возвращает идентификатор пользователя события или пустую строку.
func (e Event) UserID() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.UserID
}

// IsText сообщает, что событие — текстовое сообщение.
func (e Event) IsText() bool {
	return e.Type == EventTypeMessage && e.Message != nil && e.Message.Type == MessageTypeText
}

// ParseWebhook разбирает тело вебхука. Кривой JSON — ошибка всего запроса,
// кривое отдельное событие просто не пройдёт проверки типов выше.
func ParseWebhook(body []byte) (WebhookRequest, error) {
	var req WebhookRequest
	err := json.Unmarshal(body, &req)
	return req, err
}

package models

// Статусы записи в очереди. Переходы только вперёд:
// queued -> waiting -> called, обратных переходов нет.
const (
	StatusQueued  = "queued"  // ждёт подтверждения внешней формы, вызову не подлежит
	StatusWaiting = "waiting" // готов к вызову
	StatusCalled  = "called"  // вызван
)

// RowWidth — число колонок листа очереди (A..I).
const RowWidth = 9

// QueueEntry — одна строка листа очереди.
type QueueEntry struct {
	ID             string `json:"id"`              // A: уникальный идентификатор записи
	Name           string `json:"name"`            // B: имя, присланное пользователем
	Email          string `json:"email"`           // C: заполняется внешней формой, ядро не трогает
	EnqueuedAt     string `json:"enqueued_at"`     // D: время постановки в очередь, RFC 3339
	Position       string `json:"position"`        // E: зарезервировано
	ScheduledStart string `json:"scheduled_start"` // F: зарезервировано
	Status         string `json:"status"`          // G: queued | waiting | called
	Notified       bool   `json:"notified"`        // H: было ли отправлено уведомление
	LineUserID     string `json:"line_user_id"`    // I: идентификатор пользователя LINE
}

// EntryFromRow разбирает строку листа в запись. Короткие строки (лист могли
// править руками) не считаются ошибкой: недостающие ячейки остаются пустыми,
// чтобы одна кривая строка не ломала выдачу всей очереди.
func EntryFromRow(row []string) QueueEntry {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return QueueEntry{
		ID:             cell(0),
		Name:           cell(1),
		Email:          cell(2),
		EnqueuedAt:     cell(3),
		Position:       cell(4),
		ScheduledStart: cell(5),
		Status:         cell(6),
		Notified:       cell(7) == "TRUE",
		LineUserID:     cell(8),
	}
}

// ToRow собирает запись обратно в строку листа в порядке колонок A..I.
func (e QueueEntry) ToRow() []string {
	notified := "FALSE"
	if e.Notified {
		notified = "TRUE"
	}
	return []string{
		e.ID,
		e.Name,
		e.Email,
		e.EnqueuedAt,
		e.Position,
		e.ScheduledStart,
		e.Status,
		notified,
		e.LineUserID,
	}
}

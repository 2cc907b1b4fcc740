package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linequeue/internal/models"
	"linequeue/internal/sheetstore"

	"github.com/google/uuid"
)

var (
	// ErrStoreUnavailable — таблицу не удалось прочитать или записать.
	// При ошибке Enqueue вызывающий не должен считать запись сохранённой.
	ErrStoreUnavailable = errors.New("хранилище очереди недоступно")
	// ErrNoWaiting — в очереди нет ни одной записи со статусом waiting.
	// Это нормальное состояние, а не сбой.
	ErrNoWaiting = errors.New("нет ожидающих в очереди")
	// ErrEntryNotFound — запись с таким ID исчезла из листа между чтением и записью.
	ErrEntryNotFound = errors.New("запись не найдена в листе")
	// ErrAlreadyCalled — запись уже перевели в called (параллельный вызов успел раньше).
	ErrAlreadyCalled = errors.New("запись уже вызвана")
)

// Repository — единственный владелец раскладки колонок листа очереди.
// Все остальные компоненты работают с записями только через него.
type Repository struct {
	store     sheetstore.RowStore
	sheetName string

	// Подменяются в тестах.
	now   func() time.Time
	newID func() string
}

func NewRepository(store sheetstore.RowStore, sheetName string) *Repository {
	return &Repository{
		store:     store,
		sheetName: sheetName,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// dataRange — диапазон данных без строки заголовка.
func (r *Repository) dataRange() string {
	return fmt.Sprintf("%s!A2:I", r.sheetName)
}

// rowRange — адрес одной строки данных по её индексу в выдаче dataRange
// (строка 0 данных лежит во второй строке листа).
func (r *Repository) rowRange(index int) string {
	n := index + 2
	return fmt.Sprintf("%s!A%d:I%d", r.sheetName, n, n)
}

// Enqueue ставит пользователя в очередь: свежий UUID, текущее время,
// статус waiting — запись сразу доступна для вызова.
func (r *Repository) Enqueue(ctx context.Context, name, lineUserID string) (models.QueueEntry, error) {
	entry := models.QueueEntry{
		ID:         r.newID(),
		Name:       name,
		EnqueuedAt: r.now().UTC().Format(time.RFC3339),
		Status:     models.StatusWaiting,
		Notified:   false,
		LineUserID: lineUserID,
	}
	if err := r.store.Append(ctx, r.dataRange(), entry.ToRow()); err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return entry, nil
}

// List возвращает все записи в порядке строк листа. Порядок строк и есть
// порядок постановки в очередь: лист только дополняется снизу.
func (r *Repository) List(ctx context.Context) ([]models.QueueEntry, error) {
	rows, err := r.store.Read(ctx, r.dataRange())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	entries := make([]models.QueueEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.EntryFromRow(row))
	}
	return entries, nil
}

// FindNextWaiting возвращает первую по порядку строк запись со статусом waiting.
// Именно порядок строк, а не сравнение времени: по строкам адресуются
// последующие записи, значит они и авторитетны.
func (r *Repository) FindNextWaiting(ctx context.Context) (models.QueueEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return models.QueueEntry{}, err
	}
	for _, entry := range entries {
		if entry.Status == models.StatusWaiting {
			return entry, nil
		}
	}
	return models.QueueEntry{}, ErrNoWaiting
}

// MarkCalled переводит запись в called и проставляет флаг notified.
// Строка ищется по ID заново в момент записи: индекс, полученный при чтении
// в FindNextWaiting, мог сместиться из-за параллельного добавления строк,
// и запись по нему затёрла бы чужую строку.
func (r *Repository) MarkCalled(ctx context.Context, id string, notified bool) (models.QueueEntry, error) {
	rows, err := r.store.Read(ctx, r.dataRange())
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	for i, row := range rows {
		entry := models.EntryFromRow(row)
		if entry.ID != id {
			continue
		}
		if entry.Status == models.StatusCalled {
			return entry, ErrAlreadyCalled
		}
		entry.Status = models.StatusCalled
		entry.Notified = notified
		if err := r.store.Update(ctx, r.rowRange(i), entry.ToRow()); err != nil {
			return models.QueueEntry{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return entry, nil
	}
	return models.QueueEntry{}, ErrEntryNotFound
}

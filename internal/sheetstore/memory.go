package sheetstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore — RowStore в памяти для тестов и локальной разработки.
// Повторяет семантику листа: Append дописывает строку в конец,
// Update переписывает строку по адресу вида "Queue!A5:I5".
type MemoryStore struct {
	mu   sync.Mutex
	rows [][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read(ctx context.Context, rangeRef string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemoryStore) Append(ctx context.Context, rangeRef string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, append([]string(nil), row...))
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, rowRef string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index, err := parseRowRef(rowRef)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(m.rows) {
		return fmt.Errorf("строка %s за пределами данных", rowRef)
	}
	m.rows[index] = append([]string(nil), row...)
	return nil
}

// InsertAt вставляет строку перед индексом, сдвигая остальные вниз.
// Нужен тестам, моделирующим правку листа между чтением и записью.
func (m *MemoryStore) InsertAt(index int, row []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index > len(m.rows) {
		return
	}
	m.rows = append(m.rows[:index], append([][]string{append([]string(nil), row...)}, m.rows[index:]...)...)
}

// parseRowRef переводит адрес одной строки листа в индекс данных:
// строка 2 листа — первая строка данных.
func parseRowRef(rowRef string) (int, error) {
	ref := rowRef
	if i := strings.IndexByte(ref, '!'); i >= 0 {
		ref = ref[i+1:]
	}
	var first, last int
	if _, err := fmt.Sscanf(ref, "A%d:I%d", &first, &last); err != nil {
		return 0, fmt.Errorf("непонятный адрес строки %q: %w", rowRef, err)
	}
	return first - 2, nil
}

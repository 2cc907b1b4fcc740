package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"linequeue/internal/models"
	"linequeue/internal/response"
	"linequeue/internal/sheetstore"

	"github.com/stretchr/testify/assert"
)

func TestStatusReturnsCountAndOrderedList(t *testing.T) {
	notifier := &fakeNotifier{}
	ts, repo := setupTestServer(sheetstore.NewMemoryStore(), notifier, "")
	defer ts.Close()
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, "Alice", "U1")
	assert.NoError(t, err)
	_, err = repo.Enqueue(ctx, "Bob", "U2")
	assert.NoError(t, err)

	// Вызываем обоих, чтобы проверить проекцию конечного состояния.
	callNext(t, ts.URL)
	callNext(t, ts.URL)

	res, err := http.Get(ts.URL + "/api/queue/status")
	assert.NoError(t, err, "Ошибка запроса состояния очереди")
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body response.StatusResponse
	err = json.NewDecoder(res.Body).Decode(&body)
	assert.NoError(t, err, "Ошибка разбора ответа статуса")

	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.List, 2)
	assert.Equal(t, "Alice", body.List[0].Name, "Порядок списка должен совпадать с порядком постановки")
	assert.Equal(t, "Bob", body.List[1].Name)
	for _, e := range body.List {
		assert.Equal(t, models.StatusCalled, e.Status, "После двух вызовов обе записи должны быть called")
	}
}

func TestStatusEmptyQueue(t *testing.T) {
	notifier := &fakeNotifier{}
	ts, _ := setupTestServer(sheetstore.NewMemoryStore(), notifier, "")
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/queue/status")
	assert.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body response.StatusResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Zero(t, body.Count)
	assert.Empty(t, body.List)
}

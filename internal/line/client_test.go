package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-token")
	c.apiBase = srv.URL
	return c, srv
}

func TestPushSendsBearerAndBody(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := c.Push(context.Background(), "U1", []Message{TextMessage("順番です")})
	assert.NoError(t, err, "Ошибка отправки push")
	assert.Equal(t, "/v2/bot/message/push", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "U1", gotBody["to"])

	messages := gotBody["messages"].([]interface{})
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "順番です", first["text"])
}

func TestReplyUsesReplyEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := c.Reply(context.Background(), "RT1", []Message{TextMessage("受け取りました")})
	assert.NoError(t, err)
	assert.Equal(t, "/v2/bot/message/reply", gotPath)
	assert.Equal(t, "RT1", gotBody["replyToken"])
}

func TestPushNon2xxIsDeliveryFailure(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid user"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	err := c.Push(context.Background(), "U404", []Message{TextMessage("x")})
	assert.ErrorIs(t, err, ErrDeliveryFailed, "Не-2xx ответ должен быть ошибкой доставки")
}

func TestPushConnectionErrorIsDeliveryFailure(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже погашен

	err := c.Push(context.Background(), "U1", []Message{TextMessage("x")})
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "channel-secret"
	body := []byte(`{"events":[]}`)

	assert.True(t, ValidateSignature(secret, body, signBody(secret, body)),
		"Правильная подпись должна проходить проверку")

	assert.False(t, ValidateSignature(secret, []byte(`{"events":[{}]}`), signBody(secret, body)),
		"Подпись другого тела не должна проходить")

	assert.False(t, ValidateSignature("другой-секрет", body, signBody(secret, body)),
		"Подпись с другим секретом не должна проходить")

	assert.False(t, ValidateSignature(secret, body, "не-base64!!!"),
		"Мусор вместо подписи не должен проходить")
}

func TestParseWebhookEventShapes(t *testing.T) {
	body := []byte(`{"events":[
		{"type":"follow","source":{"type":"user","userId":"U1"}},
		{"type":"message","replyToken":"RT","source":{"type":"user","userId":"U2"},"message":{"type":"text","text":"имя"}},
		{"type":"message","source":{"type":"user","userId":"U3"},"message":{"type":"image"}}
	]}`)

	req, err := ParseWebhook(body)
	assert.NoError(t, err)
	assert.Len(t, req.Events, 3)

	assert.Equal(t, EventTypeFollow, req.Events[0].Type)
	assert.Equal(t, "U1", req.Events[0].UserID())
	assert.False(t, req.Events[0].IsText())

	assert.True(t, req.Events[1].IsText())
	assert.Equal(t, "имя", req.Events[1].Message.Text)

	// Не-текстовое сообщение не считается текстовым событием.
	assert.False(t, req.Events[2].IsText())

	// Событие без отправителя не роняет разбор.
	req2, err := ParseWebhook([]byte(`{"events":[{"type":"follow"}]}`))
	assert.NoError(t, err)
	assert.Equal(t, "", req2.Events[0].UserID())
}

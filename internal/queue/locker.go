package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrDispatchBusy — вызов уже выполняется другим запросом или экземпляром.
var ErrDispatchBusy = errors.New("вызов следующего уже выполняется")

// Locker защищает цикл чтение-уведомление-запись вызова следующего.
// Таблица не даёт транзакций между чтением и записью, поэтому два
// одновременных вызова без блокировки уведомили бы одного и того же человека.
type Locker interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// MutexLocker — блокировка в пределах одного процесса. Достаточна, пока
// сервис запущен в одном экземпляре.
type MutexLocker struct {
	mu sync.Mutex
}

func NewMutexLocker() *MutexLocker {
	return &MutexLocker{}
}

func (l *MutexLocker) Acquire(ctx context.Context) (func(), error) {
	l.mu.Lock()
	return func() { l.mu.Unlock() }, nil
}

// RedisLocker — распределённая блокировка через SET NX с TTL.
// TTL страхует от вечно зависшей блокировки, если процесс умер, не отпустив её.
type RedisLocker struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client: client,
		key:    "linequeue:dispatch_lock",
		ttl:    30 * time.Second,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context) (func(), error) {
	ok, err := l.client.SetNX(ctx, l.key, "1", l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDispatchBusy
	}
	return func() {
		// Снимаем блокировку в фоне с собственным контекстом:
		// контекст запроса к этому моменту мог быть уже отменён.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		l.client.Del(ctx, l.key)
	}, nil
}

// Package nonce anti-forgery токены, привязанные к имени действия
//
// Токен - это усечённый HMAC-SHA256 от пары (tick, action), где tick -
// номер половины окна жизни. Проверка принимает текущий и предыдущий tick,
// поэтому фактическое время жизни токена лежит в [ttl/2, ttl].
// Токены stateless: сервер ничего не хранит между запросами.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// tokenLen длина токена в hex-символах
const tokenLen = 16

var (
	// ErrEmptySecret возвращается при попытке создать сервис без секрета
	ErrEmptySecret = errors.New("nonce: secret must not be empty")
)

// Service создает и проверяет anti-forgery токены
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time // подменяется в тестах
}

// NewService создает новый сервис токенов
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Create создает токен для указанного действия
func (s *Service) Create(action string) string {
	return s.tokenFor(action, s.tick())
}

// Verify проверяет токен для указанного действия
// Принимается токен текущего и предыдущего tick
func (s *Service) Verify(token, action string) bool {
	if token == "" {
		return false
	}

	tick := s.tick()
	if hmac.Equal([]byte(token), []byte(s.tokenFor(action, tick))) {
		return true
	}
	return hmac.Equal([]byte(token), []byte(s.tokenFor(action, tick-1)))
}

// tick номер половины окна жизни токена
func (s *Service) tick() int64 {
	half := int64(s.ttl / 2 / time.Second)
	return s.now().Unix() / half
}

func (s *Service) tokenFor(action string, tick int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s", tick, action)
	return hex.EncodeToString(mac.Sum(nil))[:tokenLen]
}

package feedback

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Kind - тип сообщения, совпадает с CSS-классом на странице
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message - временное сообщение для пользователя
type Message struct {
	Text      string    `json:"message"`
	Kind      Kind      `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
}

const currentKey = "current"

// Notifier хранит последнее сообщение до истечения TTL
type Notifier struct {
	store *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewNotifier создаёт notifier, сообщения которого скрываются через ttl
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Success публикует сообщение об успехе
func (n *Notifier) Success(text string) Message {
	return n.publish(text, KindSuccess)
}

// Error публикует сообщение об ошибке
func (n *Notifier) Error(text string) Message {
	return n.publish(text, KindError)
}

// Current возвращает видимое сообщение, если оно ещё не скрыто
func (n *Notifier) Current() (Message, bool) {
	v, found := n.store.Get(currentKey)
	if !found {
		return Message{}, false
	}
	return v.(Message), true
}

// Clear скрывает сообщение досрочно
func (n *Notifier) Clear() {
	n.store.Delete(currentKey)
}

func (n *Notifier) publish(text string, kind Kind) Message {
	msg := Message{
		Text:      text,
		Kind:      kind,
		ExpiresAt: n.now().Add(n.ttl),
	}
	// новое сообщение заменяет предыдущее и перезапускает таймер
	n.store.Set(currentKey, msg, n.ttl)
	return msg
}

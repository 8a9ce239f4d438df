package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
	"github.com/redis/go-redis/v9"
)

// maxStored is how many in-app notifications a user keeps; oldest are evicted.
const maxStored = 10

const storeTTL = 30 * 24 * time.Hour

// Notification is synthesized from an order-status change. Its ID is the
// (order, status) tuple, which is what guarantees at-most-one entry per
// status transition even if the same change is observed twice.
type Notification struct {
	ID        string             `json:"id"`
	OrderID   uint               `json:"order_id"`
	OrderRef  string             `json:"order_ref"`
	Status    models.OrderStatus `json:"status"`
	Message   string             `json:"message"`
	Read      bool               `json:"read"`
	CreatedAt time.Time          `json:"created_at"`
}

// NotificationID builds the dedup key for an order/status pair.
func NotificationID(orderID uint, status models.OrderStatus) string {
	return fmt.Sprintf("%d:%s", orderID, status)
}

// Store holds each user's bounded in-app notification list.
type Store interface {
	// Push appends a notification unless its ID was already seen for the
	// user. Returns false when the pair is a duplicate.
	Push(ctx context.Context, userID string, n Notification) (bool, error)
	List(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// RedisStore keeps notifications in a capped redis list per user, with a
// companion set tracking seen (order, status) pairs.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func listKey(userID string) string { return "notifications:" + userID }
func seenKey(userID string) string { return "notifications:seen:" + userID }

func (s *RedisStore) Push(ctx context.Context, userID string, n Notification) (bool, error) {
	added, err := s.client.SAdd(ctx, seenKey(userID), n.ID).Result()
	if err != nil {
		return false, err
	}
	if added == 0 {
		return false, nil
	}

	data, err := json.Marshal(n)
	if err != nil {
		return false, err
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, listKey(userID), data)
	pipe.LTrim(ctx, listKey(userID), 0, maxStored-1)
	pipe.Expire(ctx, listKey(userID), storeTTL)
	pipe.Expire(ctx, seenKey(userID), storeTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) List(ctx context.Context, userID string) ([]Notification, error) {
	raw, err := s.client.LRange(ctx, listKey(userID), 0, maxStored-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(raw))
	for _, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *RedisStore) MarkRead(ctx context.Context, userID, notificationID string) error {
	raw, err := s.client.LRange(ctx, listKey(userID), 0, maxStored-1).Result()
	if err != nil {
		return err
	}
	for i, item := range raw {
		var n Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		if n.ID != notificationID {
			continue
		}
		n.Read = true
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		return s.client.LSet(ctx, listKey(userID), int64(i), data).Err()
	}
	return fmt.Errorf("notification not found: %s", notificationID)
}

// MemoryStore is the in-process fallback used when no redis address is
// configured, and by tests.
type MemoryStore struct {
	mu    sync.Mutex
	lists map[string][]Notification
	seen  map[string]map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[string][]Notification),
		seen:  make(map[string]map[string]bool),
	}
}

func (s *MemoryStore) Push(_ context.Context, userID string, n Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen[userID] == nil {
		s.seen[userID] = make(map[string]bool)
	}
	if s.seen[userID][n.ID] {
		return false, nil
	}
	s.seen[userID][n.ID] = true

	list := append([]Notification{n}, s.lists[userID]...)
	if len(list) > maxStored {
		list = list[:maxStored]
	}
	s.lists[userID] = list
	return true, nil
}

func (s *MemoryStore) List(_ context.Context, userID string) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.lists[userID]))
	copy(out, s.lists[userID])
	return out, nil
}

func (s *MemoryStore) MarkRead(_ context.Context, userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.lists[userID] {
		if n.ID == notificationID {
			s.lists[userID][i].Read = true
			return nil
		}
	}
	return fmt.Errorf("notification not found: %s", notificationID)
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// SessionCacheStore keeps bearer sessions in Redis. Expiry is delegated to
// key TTLs, so expired sessions disappear without a sweep.
type SessionCacheStore struct {
	rdb   *redis.Client
	clock contract.IClock
}

var _ contract.ISessionRepository = (*SessionCacheStore)(nil)

func NewSessionCacheStore(rdb *redis.Client, clock contract.IClock) *SessionCacheStore {
	return &SessionCacheStore{rdb: rdb, clock: clock}
}

func sessionKey(token string) string       { return fmt.Sprintf("session:token:%s", token) }
func userSessionsKey(userID string) string { return fmt.Sprintf("session:user:%s", userID) }

const (
	// sessionIndexKey is a zset of tokens scored by expiry (unix seconds).
	sessionIndexKey = "session:all"
	// sessionOwnersKey maps token to user id and outlives the token key, so
	// per-user sets can be cleaned after Redis has expired the session.
	sessionOwnersKey = "session:owners"
)

func (c *SessionCacheStore) SaveSession(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(c.clock.Now())
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(session.Token), data, ttl)
	pipe.SAdd(ctx, userSessionsKey(session.UserID), session.Token)
	pipe.HSet(ctx, sessionOwnersKey, session.Token, session.UserID)
	pipe.ZAdd(ctx, sessionIndexKey, redis.Z{Score: float64(session.ExpiresAt.Unix()), Member: session.Token})
	_, err = pipe.Exec(ctx)
	return err
}

func (c *SessionCacheStore) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	b, err := c.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session entity.Session
	if err := json.Unmarshal(b, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.Expired(c.clock.Now()) {
		if _, err := c.DeleteSession(ctx, token); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &session, nil
}

func (c *SessionCacheStore) DeleteSession(ctx context.Context, token string) (bool, error) {
	owner, err := c.rdb.HGet(ctx, sessionOwnersKey, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	pipe := c.rdb.TxPipeline()
	del := pipe.Del(ctx, sessionKey(token))
	pipe.ZRem(ctx, sessionIndexKey, token)
	pipe.HDel(ctx, sessionOwnersKey, token)
	if owner != "" {
		pipe.SRem(ctx, userSessionsKey(owner), token)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

func (c *SessionCacheStore) DeleteSessionsByUser(ctx context.Context, userID string) (int, error) {
	tokens, err := c.rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	keys := make([]string, 0, len(tokens))
	members := make([]interface{}, 0, len(tokens))
	for _, t := range tokens {
		keys = append(keys, sessionKey(t))
		members = append(members, t)
	}
	pipe := c.rdb.TxPipeline()
	del := pipe.Del(ctx, keys...)
	pipe.ZRem(ctx, sessionIndexKey, members...)
	pipe.HDel(ctx, sessionOwnersKey, tokens...)
	pipe.Del(ctx, userSessionsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(del.Val()), nil
}

// PurgeExpired drops index, owner and per-user entries of sessions whose keys
// Redis has already expired.
func (c *SessionCacheStore) PurgeExpired(ctx context.Context) (int, error) {
	upTo := fmt.Sprintf("%d", c.clock.Now().Unix())
	tokens, err := c.rdb.ZRangeByScore(ctx, sessionIndexKey, &redis.ZRangeBy{Min: "-inf", Max: upTo}).Result()
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	owners, err := c.rdb.HMGet(ctx, sessionOwnersKey, tokens...).Result()
	if err != nil {
		return 0, err
	}

	members := make([]interface{}, 0, len(tokens))
	keys := make([]string, 0, len(tokens))
	pipe := c.rdb.TxPipeline()
	for i, t := range tokens {
		members = append(members, t)
		keys = append(keys, sessionKey(t))
		if owner, ok := owners[i].(string); ok && owner != "" {
			pipe.SRem(ctx, userSessionsKey(owner), t)
		}
	}
	pipe.Del(ctx, keys...)
	pipe.HDel(ctx, sessionOwnersKey, tokens...)
	removed := pipe.ZRem(ctx, sessionIndexKey, members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(removed.Val()), nil
}

func (c *SessionCacheStore) CountSessions(ctx context.Context) (int, error) {
	n, err := c.rdb.ZCard(ctx, sessionIndexKey).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

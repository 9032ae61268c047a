// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := UseClient(client, []byte(viper.GetString("redis.encryptionKey"))); err != nil {
		return err
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

// UseClient installs an already connected client and the AES-256 key for drafts
func UseClient(client *redis.Client, key []byte) error {
	if len(key) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}
	RedisClient = client
	encryptionKey = key
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("selector:draft:%s", sessionID)
}

// CacheDraft stores the selector form state of a session, encrypted, for ttl
func CacheDraft(ctx context.Context, draft *model.SelectorDraft, ttl time.Duration) error {
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	encryptedDraft, err := encrypt(draftJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt draft: %w", err)
	}

	err = RedisClient.Set(ctx, draftKey(draft.SessionID), base64.StdEncoding.EncodeToString(encryptedDraft), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache draft: %w", err)
	}

	logger.Debug("Selector draft cached", zap.String("sessionID", draft.SessionID))
	return nil
}

// GetCachedDraft returns nil, nil when the session has no draft
func GetCachedDraft(ctx context.Context, sessionID string) (*model.SelectorDraft, error) {
	encryptedDraftStr, err := RedisClient.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		logger.Debug("Selector draft not found in cache", zap.String("sessionID", sessionID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get draft from cache: %w", err)
	}

	encryptedDraft, err := base64.StdEncoding.DecodeString(encryptedDraftStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}

	draftJSON, err := decrypt(encryptedDraft)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt draft: %w", err)
	}

	var draft model.SelectorDraft
	if err := json.Unmarshal(draftJSON, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

func DeleteCachedDraft(ctx context.Context, sessionID string) error {
	if err := RedisClient.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from cache: %w", err)
	}
	return nil
}

// RateLimit is a sliding window counter per key
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

package customdict

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "telspell:custom_dict"

var ErrEmptyWord = errors.New("custom word is empty")

// CustomDict stores user-added words in a Redis set.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a CustomDict on the given client. An empty key selects
// DefaultKey.
func New(client redis.Cmdable, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Add inserts a word into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return ErrEmptyWord
	}
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}

// Contains reports whether word is in the custom dictionary.
func (cd *CustomDict) Contains(ctx context.Context, word string) (bool, error) {
	return cd.client.SIsMember(ctx, cd.key, strings.TrimSpace(word)).Result()
}

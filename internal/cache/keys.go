package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PostKeyPrefix = "post:%d"
	// FeedKey caches the anonymous first page of the feed only; any
	// viewer-specific like state is layered on top after a cache hit.
	FeedKey = "feed:recent"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
	FeedTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost drops the cached post and the feed page that embeds its
// counters. Every like/comment mutation goes through here so the derived
// counts never drift.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, FeedKey)
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey)
}

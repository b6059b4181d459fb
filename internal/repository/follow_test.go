package repository

import (
	"context"
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Toggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	following, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	isFollowing, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, isFollowing)

	// Second toggle unfollows; the edge is directed so bob does not follow alice.
	following, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	isFollowing, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowRepository_FollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Toggle(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, bob.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	followers, err := repo.GetFollowers(ctx, carol.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := repo.GetFollowing(ctx, carol.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)

	nFollowers, err := repo.CountFollowers(ctx, carol.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, nFollowers)

	nFollowing, err := repo.CountFollowing(ctx, carol.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, nFollowing)
}

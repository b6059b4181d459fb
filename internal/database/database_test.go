package database

import (
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateCreatesSchema(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "posts", "comments", "likes", "follows"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestMigrateEnforcesLikeUniqueness(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	user := models.User{Username: "lifter", Email: "lifter@example.com", Password: "pw"}
	require.NoError(t, db.Create(&user).Error)
	post := models.Post{Content: "pr day", UserID: user.ID}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error)
	err = db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
	assert.Error(t, err, "duplicate (post_id, user_id) like must violate the unique index")
}

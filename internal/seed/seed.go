package seed

import (
	"fmt"
	"log"

	"fitpoint/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
}

// Seed populates the database with test data: users with biometric
// profiles, posts spread over recent weeks, a follow mesh, and likes and
// comments on top.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db, SeedOptions{SkipBcrypt: opts.SkipBcrypt})

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := createPosts(f, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createFollowMesh(f, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}

	if err := createEngagement(f, users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents so FK constraints hold.
	for _, model := range []interface{}{
		&models.Like{}, &models.Comment{}, &models.Follow{}, &models.Post{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(f *Factory, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(f *Factory, users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		user := users[f.rng.Intn(len(users))]
		posts = append(posts, f.BuildPost(user))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// createFollowMesh gives every user a handful of follows so profile pages
// and follower counts have something to show.
func createFollowMesh(f *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, follower := range users {
		targets := f.rng.Intn(5) + 1
		for i := 0; i < targets; i++ {
			following := users[f.rng.Intn(len(users))]
			if err := f.CreateFollow(follower, following); err != nil {
				return err
			}
		}
	}
	return nil
}

func createEngagement(f *Factory, users []*models.User, posts []*models.Post) error {
	if len(users) == 0 {
		return nil
	}
	for _, post := range posts {
		likes := f.rng.Intn(len(users))
		for i := 0; i < likes; i++ {
			if err := f.CreateLike(users[f.rng.Intn(len(users))], post); err != nil {
				return err
			}
		}

		comments := f.rng.Intn(4)
		for i := 0; i < comments; i++ {
			if _, err := f.CreateComment(users[f.rng.Intn(len(users))], post); err != nil {
				return err
			}
		}
	}
	return nil
}

// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitpoint/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune how the factory generates data.
type SeedOptions struct {
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// SkipBcrypt stores the plain dev password instead of hashing it.
	// Hashing dominates seeding time for large user counts.
	SkipBcrypt bool
	// MaxDays spreads created_at timestamps over the last N days.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and by tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

var (
	activityLevels = []string{
		models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
		models.ActivityActive, models.ActivityVeryActive,
	}
	goals   = []string{models.GoalLose, models.GoalMaintain, models.GoalGain}
	genders = []string{models.GenderMale, models.GenderFemale}

	workouts = []string{
		"5k tempo run", "heavy squat session", "push day", "pull day",
		"long slow ride", "hill sprints", "deadlift PR attempt", "swim intervals",
		"mobility work", "rest day walk", "rowing intervals", "leg day",
	}
	postTemplates = []string{
		"Finished a %s this morning. Feeling %s.",
		"Week %d of the program: %s done, on to the next one.",
		"Today's session: %s. %s",
		"Skipped the snooze button and got my %s in before work.",
	}
	commentPhrases = []string{
		"Nice work!", "What was the pace?", "Strong session.",
		"How are you recovering between these?", "Inspiring, keep it up.",
		"Adding this one to my plan.", "What program are you running?",
	}
)

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	age := gofakeit.Number(18, 65)
	height := float64(gofakeit.Number(150, 200))
	weight := float64(gofakeit.Number(50, 110))

	user := &models.User{
		Username:      gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:         gofakeit.Email(),
		Bio:           gofakeit.Sentence(10),
		Avatar:        fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Age:           &age,
		Gender:        genders[f.rng.Intn(len(genders))],
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: activityLevels[f.rng.Intn(len(activityLevels))],
		Goal:          goals[f.rng.Intn(len(goals))],
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s", user.Username)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post struct for the given user without persisting
// it. Useful for batching.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	workout := workouts[f.rng.Intn(len(workouts))]
	var content string
	switch f.rng.Intn(len(postTemplates)) {
	case 0:
		content = fmt.Sprintf(postTemplates[0], workout, gofakeit.AdjectiveDescriptive())
	case 1:
		content = fmt.Sprintf(postTemplates[1], gofakeit.Number(1, 12), workout)
	case 2:
		content = fmt.Sprintf(postTemplates[2], workout, gofakeit.Sentence(8))
	default:
		content = fmt.Sprintf(postTemplates[3], workout)
	}

	post := &models.Post{
		Content:  content,
		UserID:   user.ID,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost for user %d", user.ID)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in a single DB call when possible.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreatePostsBatch: %d posts (no DB write)", len(posts))
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a generated comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   commentPhrases[f.rng.Intn(len(commentPhrases))],
		UserID:    user.ID,
		PostID:    post.ID,
		CreatedAt: post.CreatedAt.Add(time.Duration(f.rng.Intn(180)+1) * time.Minute),
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like edge. Duplicate pairs are silently skipped so
// random sampling does not have to track what it already generated.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{PostID: post.ID, UserID: user.ID}
	err := f.db.Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		FirstOrCreate(like).Error
	return err
}

// CreateFollow persists a follow edge, skipping self-follows and duplicates.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	if f.opts.DryRun {
		return nil
	}
	follow := &models.Follow{FollowerID: follower.ID, FollowingID: following.ID}
	return f.db.Where("follower_id = ? AND following_id = ?", follower.ID, following.ID).
		FirstOrCreate(follow).Error
}

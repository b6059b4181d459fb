// Command seed populates the FitPoint database with demo data.
package main

import (
	"flag"
	"log"

	"fitpoint/internal/config"
	"fitpoint/internal/database"
	"fitpoint/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing (dev only, stores plain passwords)")
	flag.Parse()

	log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users have the password: password123")
}

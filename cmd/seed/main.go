package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/auth"
	"github.com/KlienGumapac/freedomewall/internal/config"
	"github.com/KlienGumapac/freedomewall/internal/database"
	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/seed"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(logger.Options{Level: cfg.LogLevel, File: "-", Development: true}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	command := "dev"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx := context.Background()

	switch command {
	case "dev":
		run(ctx, cfg, seedDev)
	case "test":
		run(ctx, cfg, seedTest)
	case "clean":
		run(ctx, cfg, cleanSeed)
	case "verify":
		run(ctx, cfg, verifySeed)
	case "token":
		if len(os.Args) < 3 {
			usage()
		}
		run(ctx, cfg, func(ctx context.Context, store *database.Store) error {
			return issueToken(ctx, cfg, store, os.Args[2])
		})
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: seed [dev|test|clean|verify|token <username>]")
	fmt.Println("  dev    - Seed the store with realistic data")
	fmt.Println("  test   - Seed the fixed test accounts (alice, bob, charlie, diana, eve)")
	fmt.Println("  clean  - Remove all posts and users (use with caution)")
	fmt.Println("  verify - Print counts and check stored posts for integrity problems")
	fmt.Println("  token  - Print a bearer token for an existing user")
	os.Exit(1)
}

func run(ctx context.Context, cfg *config.Config, fn func(ctx context.Context, store *database.Store) error) {
	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close(ctx)

	logger.Log.Info("Store connected", zap.String("driver", store.Driver))

	if err := fn(ctx, store); err != nil {
		logger.Log.Fatal("Seed command failed", zap.Error(err))
	}
}

func seedDev(ctx context.Context, store *database.Store) error {
	seeder := seed.NewSeeder(store.Users, wall.NewService(store.Posts, store.Users), 0)
	if err := seeder.SeedDev(ctx, seed.DevCounts); err != nil {
		return err
	}
	logger.Log.Info("Development data seeded successfully")
	return nil
}

func seedTest(ctx context.Context, store *database.Store) error {
	seeder := seed.NewSeeder(store.Users, wall.NewService(store.Posts, store.Users), 1)
	users, err := seeder.SeedTest(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		logger.Log.Info("Test user ready", zap.String("username", u.Username), zap.String("id", u.ID))
	}
	return nil
}

func cleanSeed(ctx context.Context, store *database.Store) error {
	if err := store.Clean(ctx); err != nil {
		return err
	}
	logger.Log.Info("Seed data cleaned successfully")
	return nil
}

func issueToken(ctx context.Context, cfg *config.Config, store *database.Store, username string) error {
	user, err := store.Users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user %q: %w", username, err)
	}

	token, expiresAt, err := auth.NewIssuer(cfg.JWTSecret).Issue(user.ID, cfg.TokenTTL)
	if err != nil {
		return err
	}

	logger.Log.Info("Token issued",
		zap.String("username", username),
		zap.Time("expires_at", expiresAt.Truncate(time.Second)),
	)
	fmt.Println(token)
	return nil
}

func verifySeed(ctx context.Context, store *database.Store) error {
	seeder := seed.NewSeeder(store.Users, wall.NewService(store.Posts, store.Users), 1)
	report, err := seeder.Verify(ctx, 3)
	if err != nil {
		return err
	}

	fmt.Println("Record counts:")
	fmt.Printf("  Users:             %d\n", report.Users)
	fmt.Printf("  Posts:             %d\n", report.Posts)
	fmt.Printf("  Posts with images: %d\n", report.PostsWithImages)
	fmt.Printf("  Reactions:         %d\n", report.Reactions)
	for _, t := range models.ReactionTypes {
		fmt.Printf("    %-6s %d\n", t, report.ReactionsByType[t])
	}
	fmt.Printf("  Comments:          %d\n", report.Comments)
	fmt.Println()

	fmt.Println("Sample posts:")
	for _, p := range report.Samples {
		author := p.User
		if p.Author != nil {
			author = "@" + p.Author.Username
		}
		fmt.Printf("  %s by %s: %q (%d reactions, %d comments)\n", p.ID, author, p.Content, p.Summary.Likes, len(p.Comments))
	}
	fmt.Println()

	if !report.OK() {
		for _, problem := range report.Problems {
			logger.Log.Warn("Integrity problem", zap.String("problem", problem))
		}
		return fmt.Errorf("%d integrity problems found", len(report.Problems))
	}
	logger.Log.Info("Seed data verified")
	return nil
}

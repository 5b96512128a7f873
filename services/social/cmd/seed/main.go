package main

import (
	"context"
	"flag"
	"fmt"

	"yadig/pkg/config"
	"yadig/pkg/database"
	"yadig/pkg/hasher"
	"yadig/pkg/logger"
	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/repo/persistent"
	"yadig/services/social/internal/usecase"

	"gorm.io/gorm"
)

type noTokens struct{}

func (noTokens) GenerateToken(string, string, string) (string, error) {
	return "", fmt.Errorf("seeding does not issue tokens")
}

func main() {
	demo := flag.Bool("demo", false, "also create demo users, reviews and lists")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithEnv(cfg.Env)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	ctx := context.Background()
	bcrypt := hasher.NewBcrypt(cfg.BcryptCost)
	users := persistent.NewUserRepository(db)

	if err := seedAdmin(ctx, users, bcrypt, cfg, log); err != nil {
		log.Error("Failed to seed admin: %v", err)
		panic(err)
	}

	if *demo {
		if err := seedDemo(ctx, db, bcrypt, log); err != nil {
			log.Error("Failed to seed demo content: %v", err)
			panic(err)
		}
	}

	log.Info("Database seeded successfully!")
}

// seedAdmin creates the configured administrator once. It is the only way an
// account gets the admin role.
func seedAdmin(ctx context.Context, users persistent.UserRepository, bcrypt *hasher.Bcrypt, cfg *config.Config, log *logger.Logger) error {
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}

	if existing, err := users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		log.Info("Admin %s already exists with id %d", existing.Email(), existing.ID())
		return nil
	} else if !entity.IsNotFound(err) {
		return err
	}

	admin, err := entity.NewAdmin(cfg.AdminEmail, cfg.AdminUsername, cfg.AdminPassword, bcrypt)
	if err != nil {
		return err
	}
	created, err := users.Create(ctx, admin)
	if err != nil {
		return err
	}
	log.Info("Created admin %s with id %d", created.Email(), created.ID())
	return nil
}

func seedDemo(ctx context.Context, db *gorm.DB, bcrypt *hasher.Bcrypt, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	reviewRepo := persistent.NewReviewRepository(db)
	listRepo := persistent.NewListRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	userUseCase := usecase.NewUserUseCase(userRepo, reviewRepo, listRepo, bcrypt, noTokens{})
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, commentRepo, persistent.NewTransactor(db))
	listUseCase := usecase.NewListUseCase(listRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, reviewRepo)

	demoUsers := []struct {
		email    string
		username string
	}{
		{"alice@yadig.com", "alice"},
		{"bob@yadig.com", "bob"},
		{"carol@yadig.com", "carol"},
	}

	actors := make([]entity.Actor, 0, len(demoUsers))
	for _, u := range demoUsers {
		user, err := userUseCase.Register(ctx, u.email, u.username, "demopassword")
		if entity.IsConflict(err) {
			existing, findErr := userRepo.FindByEmail(ctx, u.email)
			if findErr != nil {
				return findErr
			}
			actors = append(actors, existing.Actor())
			continue
		}
		if err != nil {
			return fmt.Errorf("register %s: %w", u.username, err)
		}
		log.Info("Created demo user %s", user.Username())
		actors = append(actors, user.Actor())
	}

	alice, bob, carol := actors[0], actors[1], actors[2]

	review, err := reviewUseCase.Create(ctx, alice, entity.ReviewInput{
		Title:      "A cold, perfect record",
		Body:       "Every track leans into the next one.",
		AlbumID:    "6GjwtEZcfenmOf6l18N7T7",
		StarRating: 5,
	})
	if err != nil {
		return err
	}

	if _, err := commentUseCase.Create(ctx, bob, "Agreed, the closer is unreal.", review.ID()); err != nil {
		return err
	}
	if _, err := reviewUseCase.Like(ctx, carol, review.ID()); err != nil {
		return err
	}

	list, err := listUseCase.Create(ctx, bob, entity.ListInput{
		Title:       "Late night",
		Description: "Albums for after midnight",
		AlbumIDs:    []string{"6GjwtEZcfenmOf6l18N7T7", "1DFixLWuPkv3KT3TnV35m3"},
	})
	if err != nil {
		return err
	}
	if _, err := listUseCase.Like(ctx, alice, list.ID()); err != nil {
		return err
	}

	for _, pair := range [][2]entity.Actor{{bob, alice}, {carol, alice}, {alice, bob}} {
		if _, err := userUseCase.Follow(ctx, pair[0], pair[1].ID); err != nil {
			return err
		}
	}

	log.Info("Created demo review %d and list %d", review.ID(), list.ID())
	return nil
}

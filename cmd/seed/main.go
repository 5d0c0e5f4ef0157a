package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Naveenkumar-0814/PurityPropAI/config"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/entity"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/domain/repository"
	pginfra "github.com/Naveenkumar-0814/PurityPropAI/internal/infrastructure/postgres"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/helpers"
)

func main() {
	email := flag.String("email", "demo@purityprop.local", "demo user email")
	password := flag.String("password", "Password123!", "demo user password")
	name := flag.String("name", "Demo User", "demo user display name")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, helpers.NewDiscardLogger()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hash, err := helpers.NewPasswordHasher(cfg.BcryptCost).Hash(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	repo := pginfra.NewUserRepository(pool)
	u := &entity.User{Email: *email, PasswordHash: hash, Name: *name}
	if err := repo.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			fmt.Printf("user %s already exists; nothing to do\n", *email)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s\n", u.ID, u.Email, u.Name)
}

package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"zeros.dev/launchpad/internal/config"
	"zeros.dev/launchpad/internal/entity"
	userRepo "zeros.dev/launchpad/internal/modules/user/repository"
	"zeros.dev/launchpad/internal/server"
	"zeros.dev/launchpad/pkg/content"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		log.Fatalf("failed to create content directory: %v", err)
	}

	if !cfg.Production() {
		if err := seedOrchestrator(cfg); err != nil {
			log.Fatalf("failed to seed orchestrator account: %v", err)
		}
	}

	srv := server.NewServer(cfg)

	log.Printf("launchpad listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// seedOrchestrator guarantees a development login. Production content is
// provisioned through the access-request workflow instead.
func seedOrchestrator(cfg *config.Config) error {
	store := content.NewStore(cfg.ContentDir)
	repo := userRepo.NewUserRepository(store)
	ctx := context.Background()

	email := "orchestrator@zeros.dev"
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Println("orchestrator account already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Name:         "Program Orchestrator",
		Email:        email,
		Role:         entity.RoleOrchestrator,
		Avatar:       "/avatars/1.png",
		PasswordHash: string(hashed),
	}

	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	log.Println("orchestrator account seeded")
	log.Printf("   Email: %s", email)
	log.Println("   Password: admin123")

	return nil
}

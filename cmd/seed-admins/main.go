package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/database"
	"github.com/amberoven/bakehouse-backend/internal/logger"
	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/amberoven/bakehouse-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// Seeds the role reference data, an allow-list entry, and the matching
// credential record for one dashboard admin.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	roleRepo := repository.NewRoleRepository(pool)
	directoryRepo := repository.NewDirectoryRepository(pool)
	adminUserRepo := repository.NewAdminUserRepository(pool)

	// ─── Seed Roles ────────────────────────────────────────────────────
	roles := map[string]string{
		model.RoleAdmin:    "Full access to dashboard and shop management",
		model.RoleHomepage: "Homepage content management only",
		model.RoleShop:     "Shop product management only",
	}
	for name, description := range roles {
		if err := roleRepo.Upsert(ctx, name, description); err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("Failed to seed role")
		}
	}
	fmt.Println("Roles seeded.")

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Seed Admin User ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println()
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	fmt.Printf("Enter Role (%s/%s/%s, default %s): ", model.RoleAdmin, model.RoleHomepage, model.RoleShop, model.RoleAdmin)
	roleName, _ := reader.ReadString('\n')
	roleName = strings.TrimSpace(roleName)
	if roleName == "" {
		roleName = model.RoleAdmin
	}
	if _, ok := roles[roleName]; !ok {
		fmt.Println("Error: Unknown role")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	if err := directoryRepo.Upsert(ctx, email, roleName); err != nil {
		log.Fatal().Err(err).Msg("Failed to add allow-list entry")
	}

	newUser := &model.AdminUser{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := adminUserRepo.Create(ctx, newUser); err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) seeded with role '%s' (ID: %d)\n", newUser.Name, newUser.Email, roleName, newUser.ID)
}

package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookwise/bookwise_backend/config"
	entuser "github.com/bookwise/bookwise_backend/internal/repo/user"
	"github.com/bookwise/bookwise_backend/pkg/database"
	"github.com/bookwise/bookwise_backend/pkg/util/password"
)

func NewSeedAdminCommand() *cobra.Command {
	var (
		email     string
		pass      string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || pass == "" {
				return fmt.Errorf("both --email and --password are required")
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			exists, err := client.User.Query().Where(entuser.Email(email)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check existing user: %w", err)
			}
			if exists {
				return fmt.Errorf("a user with email %q already exists", email)
			}

			hash, err := password.Hash(pass)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			u, err := client.User.Create().
				SetFirstName(firstName).
				SetLastName(lastName).
				SetEmail(email).
				SetPasswordHash(hash).
				SetRole(entuser.RoleAdmin).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}

			fmt.Printf("Admin user %s created with id %s.\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&pass, "password", "", "admin password")
	cmd.Flags().StringVar(&firstName, "first-name", "Admin", "admin first name")
	cmd.Flags().StringVar(&lastName, "last-name", "User", "admin last name")

	return cmd
}

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/database"
	"github.com/starwars-blog/catalogapi/models"
	"github.com/starwars-blog/catalogapi/repository"
)

func (a *App) newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(a.newUserCreateCommand())
	cmd.AddCommand(a.newUserListCommand())
	return cmd
}

func (a *App) newUserCreateCommand() *cobra.Command {
	var (
		email    string
		password string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Example: `  catalogapi user create --email luke@rebels.org --password secret
  catalogapi user create --email vader@empire.gov --password secret --inactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if email == "" || password == "" {
				return errors.New("both --email and --password are required")
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			user := models.User{Email: email, IsActive: !inactive}
			if err := user.SetPassword(password); err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := repository.NewGormUserRepository(db).Create(cmd.Context(), &user); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("a user with email %s already exists", email)
				}
				return err
			}

			a.logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user created")
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (unique)")
	cmd.Flags().StringVar(&password, "password", "", "password, stored as a bcrypt hash")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the user as inactive")
	return cmd
}

func (a *App) newUserListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			users, err := repository.NewGormUserRepository(db).ListAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMAIL\tACTIVE")
			for _, u := range users {
				fmt.Fprintf(tw, "%d\t%s\t%t\n", u.ID, u.Email, u.IsActive)
			}
			return tw.Flush()
		},
	}
}

package main

import (
	"fmt"
	stdLog "log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Astemirdum/library-circulation/library/app"
	"github.com/Astemirdum/library-circulation/library/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "libraryctl",
		Short:        "Administration tool for the library circulation service",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newSweepCmd(), newCreateStaffCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|redo|version]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status", "redo", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Migrate(cmd.Context(), config.NewConfig(), args[0])
		},
	}
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire lapsed memberships and count overdue loans once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expired, overdue, err := app.Sweep(cmd.Context(), config.NewConfig())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "expired memberships: %d\noverdue loans: %d\n", expired, overdue)
			return nil
		},
	}
}

func newCreateStaffCmd() *cobra.Command {
	var username, email, role, password string
	cmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a librarian or admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				var err error
				if password, err = readPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			m, err := app.CreateStaff(cmd.Context(), config.NewConfig(), username, email, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %q with id %d\n", m.Role, m.Username, m.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", app.DefaultStaffRole, "librarian or admin")
	cmd.Flags().StringVar(&password, "password", "", "password; prompted when empty")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// readPassword reads a password without echo when stdin is a terminal.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal, pass --password")
	}
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	return strings.TrimSpace(string(b)), nil
}

// Package cli implements ledgerctl, the operator tool for maintenance tasks
// that must not go through the public API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/tier"
)

//go:generate mockgen -source=cli.go -destination=mock_cli.go -package=cli

type Ledger interface {
	Recalculate(ctx context.Context, userID int) (domain.BalanceSnapshot, error)
	RebuildAll(ctx context.Context, workers int) (int, error)
}

// Opener connects to the database and returns a ledger together with a
// function releasing its resources.
type Opener func(ctx context.Context, databaseURI string) (Ledger, func(), error)

var errUserOrAll = errors.New("exactly one of --user or --all is required")

func NewRootCmd(open Opener, defaultDatabase string) *cobra.Command {
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Maintenance commands for the bonus ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("database", "d", defaultDatabase, "database DSN")

	root.AddCommand(newRecalcCmd(open), newTiersCmd())
	return root
}

func newRecalcCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Rebuild cached balances from the ledger",
		Long: `Replays ledger entries and stores the resulting balance. Recalculating
a user whose cache is already correct changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetInt("user")
			all, _ := cmd.Flags().GetBool("all")
			workers, _ := cmd.Flags().GetInt("workers")
			if (userID > 0) == all {
				return errUserOrAll
			}

			dsn, _ := cmd.Flags().GetString("database")
			ledger, closeFn, err := open(cmd.Context(), dsn)
			if err != nil {
				return fmt.Errorf("can't open ledger: %w", err)
			}
			defer closeFn()

			if all {
				n, err := ledger.RebuildAll(cmd.Context(), workers)
				if err != nil {
					return fmt.Errorf("rebuild failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recalculated %d users\n", n)
				return nil
			}

			snapshot, err := ledger.Recalculate(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("recalculate user %d: %w", userID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d: balance %s (regular %s, promotional %s)\n",
				userID, snapshot.Total, snapshot.Regular, snapshot.Promotional)
			return nil
		},
	}
	cmd.Flags().IntP("user", "u", 0, "user id to recalculate")
	cmd.Flags().Bool("all", false, "recalculate every user")
	cmd.Flags().IntP("workers", "w", 4, "parallel recalculations with --all")
	return cmd
}

func newTiersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Validate and print a tier table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			table, err := tier.Load(path)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFROM\tCASHBACK %")
			for _, t := range table.Tiers() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.MinPurchaseAmount, t.CashbackPercent)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringP("file", "f", "", "tier table in TOML; the built-in table when empty")
	return cmd
}

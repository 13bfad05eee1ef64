package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"torchline_portal/internal/adapter/persistence/repository"
	"torchline_portal/internal/infrastructure/config"
	"torchline_portal/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

type seederFactory func(ctx context.Context) (usecase.ISeedUseCase, error)

func main() {
	if err := newRootCmd(newSeeder).Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeeder(ctx context.Context) (usecase.ISeedUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store, err := repository.NewDocumentStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return usecase.NewSeedUseCase(store, cfg.StoreServiceEmail), nil
}

func newRootCmd(factory seederFactory) *cobra.Command {
	var hashPasswords bool

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the document store with demo data",
		Long:         `Writes demo accounts for every portal, the service catalog, sample shipments, a pending quote and a vendor order.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, err := factory(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to set up seeder: %w", err)
			}
			res, err := seeder.Seed(cmd.Context(), usecase.SeedOptions{HashPasswords: hashPasswords})
			if err != nil {
				log.Printf("[seed] failed err=%v", err)
				return err
			}

			out := cmd.OutOrStdout()
			collections := make([]string, 0, len(res.Created))
			for c := range res.Created {
				collections = append(collections, c)
			}
			sort.Strings(collections)
			fmt.Fprintln(out, "Database seeded successfully")
			for _, c := range collections {
				fmt.Fprintf(out, "  %-16s %d\n", c, res.Created[c])
			}
			fmt.Fprintln(out, "\nDemo credentials:")
			for _, c := range usecase.DemoCredentials {
				fmt.Fprintf(out, "  %-16s %s / %s\n", c.Portal+":", c.Email, c.Password)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hashPasswords, "hash-passwords", false, "store bcrypt hashes instead of plaintext passwords")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casasbr/seedgen/config"
	"github.com/casasbr/seedgen/internal/generator"
	"github.com/casasbr/seedgen/internal/random"
	"github.com/casasbr/seedgen/internal/seedfile"
	"github.com/casasbr/seedgen/pkg/logger"
	"github.com/casasbr/seedgen/pkg/metrics"
	"github.com/casasbr/seedgen/pkg/storage"
)

var (
	generateCount int
	generateSeed  uint64
	generateOut   string
)

// seedgen generate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic property listings into the seed file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		return track("generate", func() error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			n := generateCount
			if !cmd.Flags().Changed("count") {
				if n, err = config.SeedCount(); err != nil {
					return err
				}
			}
			seed, err := resolveSeed(cmd, generateSeed)
			if err != nil {
				return err
			}
			out := seedFilePath(generateOut)

			records, err := generator.New(cat, random.New(seed)).Generate(n)
			if err != nil {
				return err
			}
			disk := storage.Default()
			if err := seedfile.Write(disk, out, records); err != nil {
				return err
			}

			metrics.RecordsGenerated.Add(float64(len(records)))
			logger.Component("generator").Info("records generated", "count", len(records), "file", out, "location", disk.URL(out), "seed", seed)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "✓ Geradas %d propriedades\n", len(records))
			fmt.Fprintf(w, "✓ Arquivo salvo em: %s\n", out)
			return nil
		})
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 120, "Number of records (env SEED_COUNT)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed for a reproducible run (env SEED_RANDOM_SEED)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Seed file path on the storage disk (env SEED_FILE)")
}

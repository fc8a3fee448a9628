package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/casasbr/seedgen/internal/audit"
	"github.com/casasbr/seedgen/internal/seedfile"
	"github.com/casasbr/seedgen/pkg/collection"
	"github.com/casasbr/seedgen/pkg/logger"
	"github.com/casasbr/seedgen/pkg/metrics"
	"github.com/casasbr/seedgen/pkg/storage"
)

var validateFile string

// seedgen validate
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every record of the seed file against the listing rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		return track("validate", func() error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			file := seedFilePath(validateFile)
			records, err := seedfile.Read(storage.Default(), file)
			if err != nil {
				return err
			}

			violations := audit.Audit(records, cat)
			metrics.AuditViolations.Set(float64(len(violations)))
			logger.Component("audit").Info("seed file audited", "file", file, "records", len(records), "violations", len(violations))

			w := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintf(w, "✓ %d propriedades válidas em %s\n", len(records), file)
				return nil
			}

			for _, v := range violations {
				fmt.Fprintln(w, v.String())
			}

			byField := collection.GroupBy(violations, func(v audit.Violation) string { return v.Field })
			fields := make([]string, 0, len(byField))
			for f := range byField {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			fmt.Fprintln(w)
			for _, f := range fields {
				fmt.Fprintf(w, "  %-14s %d\n", f, len(byField[f]))
			}
			return fmt.Errorf("%d violations in %d records", len(violations), len(records))
		})
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Seed file path on the storage disk (env SEED_FILE)")
}

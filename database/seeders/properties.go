package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/internal/seedfile"
	"github.com/casasbr/seedgen/pkg/collection"
	"github.com/casasbr/seedgen/pkg/logger"
	"github.com/casasbr/seedgen/pkg/metrics"
)

// PropertiesBatchSize is how many rows go into one insert transaction.
const PropertiesBatchSize = 50

func init() {
	Register("properties", SeedProperties)
}

// SeedProperties loads the seed file and inserts its records in batches,
// one transaction per batch. A failed batch leaves earlier batches committed.
// A table that already has rows is left alone unless opts.Force is set.
func SeedProperties(db *gorm.DB, opts Options) error {
	log := logger.Component("seed").With("seeder", "properties")
	w := opts.out()

	var existing int64
	if err := db.Model(&models.Property{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if existing > 0 && !opts.Force {
		log.Warn("table is not empty, skipping; pass --force to insert anyway", "rows", existing)
		fmt.Fprintf(w, "⚠ Tabela properties já tem %d registros; use --force para inserir mesmo assim\n", existing)
		return nil
	}

	records, err := seedfile.Read(opts.Disk, opts.File)
	if err != nil {
		return err
	}

	// IDs come from the database.
	for i := range records {
		records[i].ID = 0
	}

	fmt.Fprintf(w, "Inserindo %d propriedades no banco de dados...\n", len(records))
	inserted := 0
	batches := collection.Chunk(records, PropertiesBatchSize)
	for n, batch := range batches {
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&batch).Error
		})
		if err != nil {
			log.Error("batch failed", "batch", n+1, "of", len(batches), "error", err)
			return fmt.Errorf("insert batch %d/%d: %w", n+1, len(batches), err)
		}
		inserted += len(batch)
		metrics.RecordsSeeded.WithLabelValues("properties").Add(float64(len(batch)))
		log.Info("batch inserted", "batch", n+1, "of", len(batches), "rows", inserted, "total", len(records))
		fmt.Fprintf(w, "✓ Inseridas %d de %d propriedades\n", inserted, len(records))
	}

	log.Info("properties seeded", "rows", inserted, "file", opts.File)
	return nil
}

package seeders

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/casasbr/seedgen/app/models"
	_ "github.com/casasbr/seedgen/database/migrations"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/internal/generator"
	"github.com/casasbr/seedgen/internal/random"
	"github.com/casasbr/seedgen/internal/seedfile"
	"github.com/casasbr/seedgen/pkg/database"
	"github.com/casasbr/seedgen/pkg/migration"
	"github.com/casasbr/seedgen/pkg/storage"
)

func setup(t *testing.T, n int) (*gorm.DB, Options, []models.Property) {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	_, err = migration.New(db).WithOutput(&bytes.Buffer{}).Run()
	require.NoError(t, err)

	records, err := generator.New(catalog.Default(), random.New(41)).Generate(n)
	require.NoError(t, err)

	disk := storage.NewLocal(t.TempDir(), "")
	require.NoError(t, seedfile.Write(disk, "seed-data.json", records))

	return db, Options{Disk: disk, File: "seed-data.json", Out: &bytes.Buffer{}}, records
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Property{}).Count(&n).Error)
	return n
}

func TestSeedPropertiesInsertsEveryRecord(t *testing.T) {
	db, opts, records := setup(t, 120)

	var out bytes.Buffer
	opts.Out = &out

	require.NoError(t, SeedProperties(db, opts))
	assert.EqualValues(t, 120, count(t, db))
	assert.Equal(t, "Inserindo 120 propriedades no banco de dados...\n"+
		"✓ Inseridas 50 de 120 propriedades\n"+
		"✓ Inseridas 100 de 120 propriedades\n"+
		"✓ Inseridas 120 de 120 propriedades\n", out.String())

	var first models.Property
	require.NoError(t, db.Order("id").First(&first).Error)
	assert.Equal(t, records[0].Title, first.Title)
	assert.Equal(t, records[0].Amenities, first.Amenities)
	assert.Equal(t, records[0].Images, first.Images)
	assert.Equal(t, records[0].MainImage, first.MainImage)
	assert.Equal(t, records[0].Latitude, first.Latitude)
	assert.Equal(t, records[0].Rating, first.Rating)
}

func TestSeedPropertiesSkipsFilledTable(t *testing.T) {
	db, opts, _ := setup(t, 60)

	require.NoError(t, SeedProperties(db, opts))
	var out bytes.Buffer
	opts.Out = &out
	require.NoError(t, SeedProperties(db, opts))
	assert.EqualValues(t, 60, count(t, db))
	assert.Contains(t, out.String(), "já tem 60 registros")

	opts.Force = true
	require.NoError(t, SeedProperties(db, opts))
	assert.EqualValues(t, 120, count(t, db))
}

func TestSeedPropertiesKeepsCommittedBatches(t *testing.T) {
	db, opts, records := setup(t, 120)
	require.NoError(t, db.Exec(`CREATE TRIGGER reject_broken BEFORE INSERT ON properties
		WHEN NEW.title = 'broken' BEGIN SELECT RAISE(ABORT, 'rejected title'); END`).Error)

	records[110].Title = "broken"
	require.NoError(t, seedfile.Write(opts.Disk, opts.File, records))
	var out bytes.Buffer
	opts.Out = &out

	err := SeedProperties(db, opts)
	require.Error(t, err)
	assert.ErrorContains(t, err, "insert batch 3/3")
	assert.ErrorContains(t, err, "rejected title")
	assert.EqualValues(t, 100, count(t, db))
	assert.Contains(t, out.String(), "✓ Inseridas 100 de 120 propriedades")
	assert.NotContains(t, out.String(), "✓ Inseridas 120 de 120")
}

func TestSeedPropertiesMissingFile(t *testing.T) {
	db, opts, _ := setup(t, 1)
	opts.File = "nope.json"

	err := SeedProperties(db, opts)
	assert.ErrorIs(t, err, seedfile.ErrNotFound)
	assert.Zero(t, count(t, db))
}

func TestRunAllReportsProgress(t *testing.T) {
	db, opts, _ := setup(t, 5)
	var out bytes.Buffer
	opts.Out = &out

	require.NoError(t, RunAll(db, opts))
	assert.Contains(t, out.String(), "Running seeder: properties …\n")
	assert.Contains(t, out.String(), "✓ Inseridas 5 de 5 propriedades\n")
	assert.Contains(t, out.String(), "✓ properties done\n")
	assert.Contains(t, Names(), "properties")
}

func TestRunUnknownSeeder(t *testing.T) {
	db, opts, _ := setup(t, 1)
	assert.ErrorContains(t, Run(db, "users", opts), `seeder "users" is not registered`)

	require.NoError(t, Run(db, "properties", opts))
	assert.EqualValues(t, 1, count(t, db))
}

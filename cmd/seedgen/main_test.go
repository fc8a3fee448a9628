package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casasbr/seedgen/config"
	"github.com/casasbr/seedgen/internal/seedfile"
	"github.com/casasbr/seedgen/pkg/logger"
	"github.com/casasbr/seedgen/pkg/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flags keep their values and Changed marks between Execute calls.
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// workspace points the local disk and metrics textfile at a temp dir.
func workspace(t *testing.T) string {
	t.Helper()
	require.NoError(t, config.Load())
	dir := t.TempDir()
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", dir)
	config.Set("METRICS_TEXTFILE", filepath.Join(dir, "seedgen.prom"))
	config.Set("LOG_LEVEL", "error")
	return dir
}

func TestGeneratePatchValidate(t *testing.T) {
	dir := workspace(t)

	out, err := execute(t, "generate", "-n", "30", "--seed", "7", "--out", "seed.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Geradas 30 propriedades")

	disk := storage.NewLocal(dir, "")
	generated, err := seedfile.Read(disk, "seed.json")
	require.NoError(t, err)
	require.Len(t, generated, 30)
	assert.True(t, strings.HasPrefix(generated[0].MainImage, "https://picsum.photos/seed/1-0/"))

	out, err = execute(t, "patch-images", "--seed", "8", "--file", "seed.json", "--photos-dir", "", "--backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Atualizadas 30 propriedades")
	assert.True(t, disk.Exists("seed.json.bak"))

	patched, err := seedfile.Read(disk, "seed.json")
	require.NoError(t, err)
	for _, p := range patched {
		assert.True(t, strings.HasPrefix(p.MainImage, "/properties/"))
		assert.Equal(t, p.Images[0], p.MainImage)
	}

	out, err = execute(t, "validate", "--file", "seed.json")
	require.NoError(t, err)
	assert.Contains(t, out, "30 propriedades válidas")

	prom, err := os.ReadFile(filepath.Join(dir, "seedgen.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "seedgen_generator_records_total")
}

func TestGenerateIsReproducible(t *testing.T) {
	dir := workspace(t)
	disk := storage.NewLocal(dir, "")

	_, err := execute(t, "generate", "-n", "5", "--seed", "42", "--out", "a.json")
	require.NoError(t, err)
	_, err = execute(t, "generate", "-n", "5", "--seed", "42", "--out", "b.json")
	require.NoError(t, err)

	a, _ := disk.Get("a.json")
	b, _ := disk.Get("b.json")
	assert.Equal(t, string(a), string(b))
}

func TestPatchFromPhotosDir(t *testing.T) {
	dir := workspace(t)
	disk := storage.NewLocal(dir, "")
	for _, f := range []string{"photos/a.jpg", "photos/b.JPG", "photos/c.png", "photos/notes.txt"} {
		require.NoError(t, disk.Put(f, []byte("x")))
	}

	_, err := execute(t, "generate", "-n", "10", "--seed", "1", "--out", "seed.json")
	require.NoError(t, err)
	_, err = execute(t, "patch-images", "--seed", "2", "--file", "seed.json", "--photos-dir", "photos", "--backup=false")
	require.NoError(t, err)

	records, err := seedfile.Read(disk, "seed.json")
	require.NoError(t, err)
	allowed := []string{"/properties/a.jpg", "/properties/b.JPG", "/properties/c.png"}
	for _, p := range records {
		assert.Len(t, p.Images, 3)
		assert.Subset(t, allowed, []string(p.Images))
	}
}

func TestValidateFailsOnBrokenFile(t *testing.T) {
	dir := workspace(t)
	disk := storage.NewLocal(dir, "")
	require.NoError(t, disk.Put("bad.json", []byte(`[{"title":"","rating":0,"reviewCount":3}]`)))

	out, err := execute(t, "validate", "--file", "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violations in 1 records")
	assert.Contains(t, out, "record 0: title:")
}

func TestMissingSeedFile(t *testing.T) {
	workspace(t)
	_, err := execute(t, "validate", "--file", "missing.json")
	assert.ErrorIs(t, err, seedfile.ErrNotFound)
}

func TestMigrateAndSeed(t *testing.T) {
	dir := workspace(t)
	config.Set("DB_DRIVER", "sqlite")
	config.Set("DATABASE_DSN", filepath.Join(dir, "seedgen.db"))
	t.Cleanup(func() {
		config.Set("DB_DRIVER", "mysql")
		config.Set("DATABASE_DSN", "")
	})

	_, err := execute(t, "generate", "-n", "70", "--seed", "3", "--out", "seed.json")
	require.NoError(t, err)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "20250101000000_create_properties_table")

	out, err = execute(t, "seed", "--file", "seed.json")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Inseridas 70 de 70 propriedades")
	assert.Contains(t, out, "✓ properties done")

	out, err = execute(t, "migrate:status")
	require.NoError(t, err)
	assert.Contains(t, out, "Ran")
}

func TestPhotoFilter(t *testing.T) {
	assert.True(t, isPhoto("a.JPEG"))
	assert.True(t, isPhoto("dir/b.webp"))
	assert.False(t, isPhoto("notes.txt"))
	assert.False(t, isPhoto("jpg"))
}

func TestGenerateRejectsInvalidSeedSettings(t *testing.T) {
	workspace(t)
	config.Set("SEED_COUNT", "lots")
	t.Cleanup(func() { config.Set("SEED_COUNT", "120") })

	_, err := execute(t, "generate", "--seed", "1", "--out", "seed.json")
	assert.ErrorContains(t, err, "SEED_COUNT")

	config.Set("SEED_COUNT", "120")
	config.Set("SEED_RANDOM_SEED", "abc")
	t.Cleanup(func() { config.Set("SEED_RANDOM_SEED", "") })

	_, err = execute(t, "generate", "-n", "5", "--out", "seed.json")
	assert.ErrorContains(t, err, "SEED_RANDOM_SEED")

	_, err = execute(t, "generate", "-n", "5", "--seed", "9", "--out", "seed.json")
	assert.NoError(t, err)
}

func TestTrackDoesNotLogTheFailure(t *testing.T) {
	workspace(t)
	var buf bytes.Buffer
	prev := logger.L
	logger.L = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { logger.L = prev })

	err := track("generate", func() error { return errors.New("disk full") })
	assert.EqualError(t, err, "disk full")
	assert.Contains(t, buf.String(), "command finished")
	assert.NotContains(t, buf.String(), "disk full")
}

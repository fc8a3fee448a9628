// Package seeders provides a registry of database seed functions.
//
// Usage (define a seeder in any file in this package):
//
//	func init() {
//	    seeders.Register("properties", SeedProperties)
//	}
//
// Then run via CLI: seedgen seed
package seeders

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gorm.io/gorm"

	"github.com/casasbr/seedgen/pkg/storage"
)

// Options carries what a seeder needs besides the database.
type Options struct {
	Disk  storage.Disk
	File  string    // seed file path on Disk
	Force bool      // insert even when the table already has rows
	Out   io.Writer // progress lines; os.Stdout when nil
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// SeederFunc is the signature for a seed function.
type SeederFunc func(db *gorm.DB, opts Options) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Names lists the registered seeders in registration order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(db *gorm.DB, opts Options) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	w := opts.out()
	if len(current) == 0 {
		fmt.Fprintln(w, "  (no seeders registered)")
		return nil
	}

	for _, e := range current {
		if err := run(db, e, opts); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the named seeder.
func Run(db *gorm.DB, name string, opts Options) error {
	mu.Lock()
	var found *seederEntry
	for i := range entries {
		if entries[i].name == name {
			e := entries[i]
			found = &e
			break
		}
	}
	mu.Unlock()

	if found == nil {
		return fmt.Errorf("seeder %q is not registered", name)
	}
	return run(db, *found, opts)
}

func run(db *gorm.DB, e seederEntry, opts Options) error {
	w := opts.out()
	fmt.Fprintf(w, "  • Running seeder: %s …\n", e.name)
	if err := e.fn(db, opts); err != nil {
		fmt.Fprintf(w, "  ✗ %s FAILED\n", e.name)
		return fmt.Errorf("seeder %q: %w", e.name, err)
	}
	fmt.Fprintf(w, "  ✓ %s done\n", e.name)
	return nil
}

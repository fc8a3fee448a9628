// Package patcher swaps the placeholder gallery of generated records for
// photos from a local pool.
package patcher

import (
	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/internal/random"
)

// Patcher rewrites images and mainImage on each record it is given.
type Patcher struct {
	photos catalog.Photos
	rng    *random.Source
}

// New returns a Patcher drawing from photos.Files.
func New(photos catalog.Photos, rng *random.Source) *Patcher {
	return &Patcher{photos: photos, rng: rng}
}

// WithFiles returns a copy of p that draws from files instead of the catalog pool.
func (p *Patcher) WithFiles(files []string) *Patcher {
	photos := p.photos
	photos.Files = append([]string(nil), files...)
	return &Patcher{photos: photos, rng: p.rng}
}

// Patch rewrites every record in place and returns how many were touched.
// An empty pool leaves records unchanged.
func (p *Patcher) Patch(records []models.Property) int {
	if len(p.photos.Files) == 0 {
		return 0
	}
	for i := range records {
		records[i].SetImages(p.Gallery())
	}
	return len(records)
}

// Gallery draws one gallery. The main photo is chosen uniformly and placed
// first; the rest are sampled from the remaining pool without repeats.
func (p *Patcher) Gallery() []string {
	pool := p.photos.Files
	size := p.rng.IntBetween(p.photos.Gallery.Min, p.photos.Gallery.Max)
	if size > len(pool) {
		size = len(pool)
	}

	mainIdx := p.rng.Index(len(pool))
	rest := make([]string, 0, len(pool)-1)
	rest = append(rest, pool[:mainIdx]...)
	rest = append(rest, pool[mainIdx+1:]...)

	files := append([]string{pool[mainIdx]}, random.Sample(p.rng, rest, size-1)...)
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = p.photos.Path(f)
	}
	return out
}

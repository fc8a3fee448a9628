// Package generator builds synthetic listing records from a catalog.
package generator

import (
	"fmt"
	"strconv"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/internal/random"
)

// Generator draws every attribute of a record from its catalog using rng.
type Generator struct {
	cat *catalog.Catalog
	rng *random.Source
}

// New returns a Generator. cat must already be validated.
func New(cat *catalog.Catalog, rng *random.Source) *Generator {
	return &Generator{cat: cat, rng: rng}
}

// Generate returns n records numbered from 1.
func (g *Generator) Generate(n int) ([]models.Property, error) {
	if n < 0 {
		return nil, fmt.Errorf("generator: count must not be negative, got %d", n)
	}
	out := make([]models.Property, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, g.Record(i))
	}
	return out, nil
}

// Record builds the record at 1-based position index. The index only shows
// up in the placeholder image URLs.
func (g *Generator) Record(index int) models.Property {
	l := g.cat.Listing

	region := random.Choice(g.rng, g.cat.Regions)
	city := random.Choice(g.rng, region.Cities)
	typ := random.Choice(g.rng, g.cat.Types)

	bedrooms := g.between(typ.Bedrooms)
	bathrooms := g.between(typ.Bathrooms)
	guests := g.between(typ.GuestRange(bedrooms))
	area := g.between(typ.Area)

	jitter := g.rng.Uniform(l.PriceJitter.Min, l.PriceJitter.Max)
	price := int(float64(typ.BasePrice) * region.Multiplier * jitter * 100)

	amenities := random.Sample(g.rng, g.cat.Amenities, g.between(l.Amenities.For(bedrooms)))

	imageCount := g.between(l.Images)
	images := make([]string, imageCount)
	for j := range images {
		images[j] = fmt.Sprintf(l.ImageURL, index, j)
	}

	title := fmt.Sprintf(g.cat.TitleFormat, random.Choice(g.rng, g.cat.Adjectives), typ.DisplayLabel(), city)
	description := random.Choice(g.rng, g.cat.Descriptions) + " " +
		fmt.Sprintf(g.cat.DescriptionCounts, bedrooms, bathrooms, guests)

	address := fmt.Sprintf("%s, %d", random.Choice(g.rng, g.cat.Streets), g.between(l.StreetNumber))
	zip := fmt.Sprintf("%05d-%03d", g.between(l.ZipPrefix), g.between(l.ZipSuffix))

	rating, reviews := 0, 0
	if g.rng.Chance(l.RatingChance) {
		rating = g.between(l.Rating)
		reviews = g.between(l.Reviews)
	}
	featured := g.rng.Chance(l.FeaturedChance)

	p := models.Property{
		Title:         title,
		Description:   description,
		PropertyType:  models.PropertyType(typ.Name),
		Address:       address,
		City:          city,
		State:         region.Code,
		ZipCode:       zip,
		Latitude:      formatCoord(g.rng.Uniform(l.Latitude.Min, l.Latitude.Max)),
		Longitude:     formatCoord(g.rng.Uniform(l.Longitude.Min, l.Longitude.Max)),
		PricePerNight: price,
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		MaxGuests:     guests,
		Area:          area,
		Amenities:     models.StringList(amenities),
		OwnerID:       l.OwnerID,
		Status:        models.PropertyStatus(l.Status),
		Featured:      featured,
		Rating:        rating,
		ReviewCount:   reviews,
	}
	p.SetImages(images)
	return p
}

func (g *Generator) between(r catalog.IntRange) int {
	return g.rng.IntBetween(r.Min, r.Max)
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

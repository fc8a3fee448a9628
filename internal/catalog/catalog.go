// Package catalog holds the fixed tables the generator and the image patcher
// draw from: regions and cities, property types with their ranges, amenity
// and street pools, text fragments and the photo pool.
//
// A Catalog is plain data handed to the algorithms explicitly. The built-in
// one is embedded from default.yaml; Load reads a replacement from disk.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("catalog: invalid")

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n lies within the range.
func (r IntRange) Contains(n int) bool { return n >= r.Min && n <= r.Max }

func (r IntRange) valid() bool { return r.Min <= r.Max }

// FloatRange is a closed float interval.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether f lies within the range.
func (r FloatRange) Contains(f float64) bool { return f >= r.Min && f <= r.Max }

// Region is a state with its price multiplier and the cities listings may use.
type Region struct {
	Code       string   `yaml:"code"`
	Name       string   `yaml:"name"`
	Multiplier float64  `yaml:"multiplier"`
	Cities     []string `yaml:"cities"`
}

// PropertyType describes the attribute ranges of one listing category.
// Guests is either a fixed range or, when GuestsPerBedroom is set,
// derived from the bedroom count.
type PropertyType struct {
	Name             string   `yaml:"name"`
	Label            string   `yaml:"label"`
	BasePrice        int      `yaml:"base_price"`
	Bedrooms         IntRange `yaml:"bedrooms"`
	Bathrooms        IntRange `yaml:"bathrooms"`
	Guests           IntRange `yaml:"guests"`
	GuestsPerBedroom int      `yaml:"guests_per_bedroom"`
	Area             IntRange `yaml:"area"`
}

// DisplayLabel is the label used in titles; it defaults to the capitalised name.
func (t PropertyType) DisplayLabel() string {
	if t.Label != "" {
		return t.Label
	}
	r, size := utf8.DecodeRuneInString(t.Name)
	return string(unicode.ToUpper(r)) + t.Name[size:]
}

// GuestRange is the range maxGuests must fall in for a given bedroom count.
func (t PropertyType) GuestRange(bedrooms int) IntRange {
	if t.GuestsPerBedroom > 0 {
		n := bedrooms * t.GuestsPerBedroom
		return IntRange{Min: n, Max: n}
	}
	return t.Guests
}

// AmenityRule bounds the amenity count: between Min and
// min(Max, Min + PerBedroom·bedrooms).
type AmenityRule struct {
	Min        int `yaml:"min"`
	Max        int `yaml:"max"`
	PerBedroom int `yaml:"per_bedroom"`
}

// For returns the amenity count range for a bedroom count.
func (a AmenityRule) For(bedrooms int) IntRange {
	hi := a.Min + a.PerBedroom*bedrooms
	if hi > a.Max {
		hi = a.Max
	}
	return IntRange{Min: a.Min, Max: hi}
}

// Listing holds the per-record rules that are not tied to a type.
type Listing struct {
	OwnerID        int         `yaml:"owner_id"`
	Status         string      `yaml:"status"`
	PriceJitter    FloatRange  `yaml:"price_jitter"`
	Amenities      AmenityRule `yaml:"amenities"`
	Images         IntRange    `yaml:"images"`
	ImageURL       string      `yaml:"image_url"`
	RatingChance   float64     `yaml:"rating_chance"`
	Rating         IntRange    `yaml:"rating"`
	Reviews        IntRange    `yaml:"reviews"`
	FeaturedChance float64     `yaml:"featured_chance"`
	Latitude       FloatRange  `yaml:"latitude"`
	Longitude      FloatRange  `yaml:"longitude"`
	StreetNumber   IntRange    `yaml:"street_number"`
	ZipPrefix      IntRange    `yaml:"zip_prefix"`
	ZipSuffix      IntRange    `yaml:"zip_suffix"`
}

// Photos is the image patcher's pool.
type Photos struct {
	Prefix  string   `yaml:"prefix"`
	Gallery IntRange `yaml:"gallery"`
	Files   []string `yaml:"files"`
}

// Path renders a pool filename as the reference stored on a record.
func (p Photos) Path(file string) string {
	return p.Prefix + file
}

// Catalog is the complete set of generator and patcher tables.
type Catalog struct {
	Regions           []Region       `yaml:"regions"`
	Types             []PropertyType `yaml:"types"`
	Amenities         []string       `yaml:"amenities"`
	Streets           []string       `yaml:"streets"`
	Adjectives        []string       `yaml:"adjectives"`
	Descriptions      []string       `yaml:"descriptions"`
	DescriptionCounts string         `yaml:"description_counts"`
	TitleFormat       string         `yaml:"title_format"`
	Listing           Listing        `yaml:"listing"`
	Photos            Photos         `yaml:"photos"`
}

// Default returns a fresh copy of the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is broken: %v", err))
	}
	return c
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path, or returns the built-in catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Type looks a property type up by name.
func (c *Catalog) Type(name string) (PropertyType, bool) {
	for _, t := range c.Types {
		if t.Name == name {
			return t, true
		}
	}
	return PropertyType{}, false
}

// Region looks a region up by code.
func (c *Catalog) Region(code string) (Region, bool) {
	for _, r := range c.Regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// Validate checks that every pool is non-empty and every range is well formed.
func (c *Catalog) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c.Regions) == 0 {
		fail("no regions")
	}
	for _, r := range c.Regions {
		if r.Code == "" {
			fail("region without code")
		}
		if len(r.Cities) == 0 {
			fail("region %s has no cities", r.Code)
		}
		if r.Multiplier <= 0 {
			fail("region %s multiplier must be positive", r.Code)
		}
	}

	if len(c.Types) == 0 {
		fail("no property types")
	}
	seen := map[string]bool{}
	for _, t := range c.Types {
		if t.Name == "" {
			fail("property type without name")
			continue
		}
		if seen[t.Name] {
			fail("duplicate property type %s", t.Name)
		}
		seen[t.Name] = true
		if t.BasePrice <= 0 {
			fail("type %s base_price must be positive", t.Name)
		}
		if !t.Bedrooms.valid() || t.Bedrooms.Min < 1 {
			fail("type %s bedrooms range is invalid", t.Name)
		}
		if !t.Bathrooms.valid() || t.Bathrooms.Min < 1 {
			fail("type %s bathrooms range is invalid", t.Name)
		}
		if !t.Area.valid() || t.Area.Min < 1 {
			fail("type %s area range is invalid", t.Name)
		}
		if t.GuestsPerBedroom <= 0 && (!t.Guests.valid() || t.Guests.Min < 1) {
			fail("type %s needs guests or guests_per_bedroom", t.Name)
		}
	}

	pools := []struct {
		name  string
		items []string
	}{
		{"amenities", c.Amenities},
		{"streets", c.Streets},
		{"adjectives", c.Adjectives},
		{"descriptions", c.Descriptions},
		{"photos.files", c.Photos.Files},
	}
	for _, p := range pools {
		if len(p.items) == 0 {
			fail("%s is empty", p.name)
		}
	}
	if strings.Count(c.DescriptionCounts, "%d") != 3 {
		fail("description_counts needs three %%d verbs")
	}
	if strings.Count(c.TitleFormat, "%s") != 3 {
		fail("title_format needs three %%s verbs")
	}

	l := c.Listing
	if l.OwnerID < 1 {
		fail("listing.owner_id must be positive")
	}
	if l.Status == "" {
		fail("listing.status is empty")
	}
	if l.PriceJitter.Min <= 0 || l.PriceJitter.Min > l.PriceJitter.Max {
		fail("listing.price_jitter is invalid")
	}
	if l.Amenities.Min < 0 || l.Amenities.PerBedroom < 0 || l.Amenities.Min > l.Amenities.Max {
		fail("listing.amenities is invalid")
	}
	if l.Amenities.Max > len(c.Amenities) {
		fail("listing.amenities.max exceeds the amenity pool")
	}
	if !l.Images.valid() || l.Images.Min < 1 {
		fail("listing.images is invalid")
	}
	if strings.Count(l.ImageURL, "%d") != 2 {
		fail("listing.image_url needs two %%d verbs")
	}
	if l.RatingChance < 0 || l.RatingChance > 1 || l.FeaturedChance < 0 || l.FeaturedChance > 1 {
		fail("listing chances must be within [0,1]")
	}
	if !l.Rating.valid() || l.Rating.Min < 1 || !l.Reviews.valid() || l.Reviews.Min < 1 {
		fail("listing.rating and listing.reviews must be positive ranges")
	}
	// zip codes render as %05d-%03d
	ranges := []struct {
		name     string
		r        IntRange
		min, max int
	}{
		{"street_number", l.StreetNumber, 0, math.MaxInt},
		{"zip_prefix", l.ZipPrefix, 0, 99999},
		{"zip_suffix", l.ZipSuffix, 0, 999},
	}
	for _, nr := range ranges {
		if !nr.r.valid() || nr.r.Min < nr.min || nr.r.Max > nr.max {
			fail("listing.%s is invalid", nr.name)
		}
	}
	if l.Latitude.Min > l.Latitude.Max || l.Longitude.Min > l.Longitude.Max {
		fail("listing coordinates are invalid")
	}

	if !c.Photos.Gallery.valid() || c.Photos.Gallery.Min < 1 {
		fail("photos.gallery is invalid")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Package audit checks seed records against the field rules on
// models.Property and the catalog's cross-field invariants.
package audit

import (
	"fmt"
	"sort"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/pkg/validate"
)

// Violation is one broken rule on one record. Index is 0-based.
type Violation struct {
	Index   int
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("record %d: %s: %s", v.Index, v.Field, v.Message)
}

// Audit returns every violation found in records, in record order.
func Audit(records []models.Property, cat *catalog.Catalog) []Violation {
	var out []Violation
	for i := range records {
		out = append(out, Record(i, &records[i], cat)...)
	}
	return out
}

// Record audits a single record.
func Record(index int, p *models.Property, cat *catalog.Catalog) []Violation {
	var out []Violation
	add := func(field, format string, args ...any) {
		out = append(out, Violation{Index: index, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	errs := validate.Struct(p)
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		add(f, "%s", errs[f])
	}

	if typ, ok := cat.Type(string(p.PropertyType)); ok {
		if !typ.Bedrooms.Contains(p.Bedrooms) {
			add("bedrooms", "%d outside %s range %d-%d", p.Bedrooms, typ.Name, typ.Bedrooms.Min, typ.Bedrooms.Max)
		}
		if !typ.Bathrooms.Contains(p.Bathrooms) {
			add("bathrooms", "%d outside %s range %d-%d", p.Bathrooms, typ.Name, typ.Bathrooms.Min, typ.Bathrooms.Max)
		}
		if g := typ.GuestRange(p.Bedrooms); !g.Contains(p.MaxGuests) {
			add("maxGuests", "%d outside %s range %d-%d", p.MaxGuests, typ.Name, g.Min, g.Max)
		}
		if !typ.Area.Contains(p.Area) {
			add("area", "%d outside %s range %d-%d", p.Area, typ.Name, typ.Area.Min, typ.Area.Max)
		}
	}

	if region, ok := cat.Region(p.State); !ok {
		add("state", "unknown state %q", p.State)
	} else if !contains(region.Cities, p.City) {
		add("city", "%q is not a city of %s", p.City, region.Code)
	}

	if (p.Rating == 0) != (p.ReviewCount == 0) {
		add("rating", "rating %d and reviewCount %d must both be zero or both be set", p.Rating, p.ReviewCount)
	}

	if amenities := cat.Listing.Amenities.For(p.Bedrooms); !amenities.Contains(len(p.Amenities)) {
		add("amenities", "%d amenities for %d bedrooms, want %d-%d", len(p.Amenities), p.Bedrooms, amenities.Min, amenities.Max)
	}

	if len(p.Images) > 0 && p.Images[0] != p.MainImage {
		add("mainImage", "%q is not the first image", p.MainImage)
	}

	return out
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casasbr/seedgen/pkg/validate"
)

type listingInput struct {
	Kind     string   `json:"kind"      validate:"required,in=casa,apartamento,kitnet"`
	State    string   `json:"state"     validate:"required,size=2"`
	Zip      string   `json:"zip"       validate:"required,regex=^[0-9]{5}-[0-9]{3}$"`
	Lat      string   `json:"latitude"  validate:"nullable,numeric,range=-90,90"`
	Rating   int      `json:"rating"    validate:"between=0,500"`
	Price    int      `json:"price"     validate:"required,gt=0"`
	Guests   int      `json:"guests"    validate:"gte=1,lte=15"`
	Images   []string `json:"images"    validate:"required,distinct,min=1,max=8"`
	Title    string   `json:"title"     validate:"required,min=3,max=20"`
	Untagged string   `json:"untagged"`
}

func valid() listingInput {
	return listingInput{
		Kind:   "kitnet",
		State:  "SP",
		Zip:    "01310-100",
		Lat:    "-23.56",
		Rating: 450,
		Price:  12000,
		Guests: 2,
		Images: []string{"a.jpg", "b.jpg"},
		Title:  "Charmosa Kitnet",
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(valid())
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestPointerInput(t *testing.T) {
	in := valid()
	assert.Empty(t, validate.Struct(&in))
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(listingInput{})
	assert.Contains(t, errs, "kind")
	assert.Contains(t, errs, "state")
	assert.Contains(t, errs, "images")
	assert.NotContains(t, errs, "latitude", "nullable field must be skipped when empty")
	assert.NotContains(t, errs, "untagged")
}

func TestRuleFailures(t *testing.T) {
	cases := map[string]func(*listingInput){
		"kind":     func(in *listingInput) { in.Kind = "castelo" },
		"state":    func(in *listingInput) { in.State = "SPX" },
		"zip":      func(in *listingInput) { in.Zip = "1310-100" },
		"latitude": func(in *listingInput) { in.Lat = "-95.5" },
		"rating":   func(in *listingInput) { in.Rating = 501 },
		"price":    func(in *listingInput) { in.Price = -1 },
		"guests":   func(in *listingInput) { in.Guests = 16 },
		"images":   func(in *listingInput) { in.Images = []string{"a.jpg", "a.jpg"} },
		"title":    func(in *listingInput) { in.Title = "Ok" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := valid()
			mutate(&in)
			errs := validate.Struct(in)
			assert.Contains(t, errs, field)
			assert.Len(t, errs, 1, "only %s should fail: %v", field, errs)
		})
	}
}

func TestNumericRejectsText(t *testing.T) {
	in := valid()
	in.Lat = "north"
	errs := validate.Struct(in)
	assert.Equal(t, "The latitude field must be a number.", errs["latitude"])
}

func TestListMaxItems(t *testing.T) {
	in := valid()
	in.Images = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	assert.Contains(t, validate.Struct(in), "images")
}

func TestNonStructInput(t *testing.T) {
	assert.Empty(t, validate.Struct(42))
}

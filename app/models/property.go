package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PropertyType is the listing category stored in the propertyType column.
type PropertyType string

const (
	PropertyTypeCasa        PropertyType = "casa"
	PropertyTypeApartamento PropertyType = "apartamento"
	PropertyTypeKitnet      PropertyType = "kitnet"
	PropertyTypeSobrado     PropertyType = "sobrado"
	PropertyTypeChacara     PropertyType = "chacara"
)

// PropertyStatus is the availability of a listing.
type PropertyStatus string

const (
	PropertyStatusDisponivel PropertyStatus = "disponivel"
	PropertyStatusOcupado    PropertyStatus = "ocupado"
	PropertyStatusManutencao PropertyStatus = "manutencao"
)

// Property is one synthetic listing in the seed file. JSON keys match the
// columns of the listing app's properties table.
type Property struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"          json:"-"`
	Title         string         `gorm:"size:255;not null"                 json:"title"         validate:"required,max=255"`
	Description   string         `gorm:"type:text;not null"                json:"description"   validate:"required"`
	PropertyType  PropertyType   `gorm:"column:propertyType;size:20;not null;index" json:"propertyType"  validate:"required,in=casa,apartamento,kitnet,sobrado,chacara"`
	Address       string         `gorm:"size:500;not null"                 json:"address"       validate:"required,max=500"`
	City          string         `gorm:"size:100;not null;index"           json:"city"          validate:"required,max=100"`
	State         string         `gorm:"size:2;not null;index"             json:"state"         validate:"required,size=2"`
	ZipCode       string         `gorm:"column:zipCode;size:10;not null"   json:"zipCode"       validate:"required,regex=^[0-9]{5}-[0-9]{3}$"`
	Latitude      string         `gorm:"size:50"                           json:"latitude"      validate:"nullable,numeric,range=-90,90"`
	Longitude     string         `gorm:"size:50"                           json:"longitude"     validate:"nullable,numeric,range=-180,180"`
	PricePerNight int            `gorm:"column:pricePerNight;not null"     json:"pricePerNight" validate:"required,gt=0"`
	Bedrooms      int            `gorm:"not null"                          json:"bedrooms"      validate:"required,gte=1"`
	Bathrooms     int            `gorm:"not null"                          json:"bathrooms"     validate:"required,gte=1"`
	MaxGuests     int            `gorm:"column:maxGuests;not null"         json:"maxGuests"     validate:"required,gte=1"`
	Area          int            `json:"area"          validate:"gte=0"`
	Amenities     StringList     `gorm:"type:text"                         json:"amenities"     validate:"distinct"`
	Images        StringList     `gorm:"type:text;not null"                json:"images"        validate:"required,distinct"`
	MainImage     string         `gorm:"column:mainImage;type:text;not null" json:"mainImage"   validate:"required"`
	OwnerID       int            `gorm:"column:ownerId;not null"           json:"ownerId"       validate:"required,gte=1"`
	Status        PropertyStatus `gorm:"size:20;not null;default:disponivel" json:"status"      validate:"required,in=disponivel,ocupado,manutencao"`
	Featured      bool           `gorm:"not null;default:false"            json:"featured"`
	Rating        int            `gorm:"default:0"                         json:"rating"        validate:"between=0,500"`
	ReviewCount   int            `gorm:"column:reviewCount;not null;default:0" json:"reviewCount" validate:"gte=0"`
	CreatedAt     time.Time      `gorm:"column:createdAt;autoCreateTime"   json:"-"`
	UpdatedAt     time.Time      `gorm:"column:updatedAt;autoUpdateTime"   json:"-"`
}

// TableName pins the table name used by the listing app.
func (Property) TableName() string {
	return "properties"
}

// HasRating reports whether the listing carries reviews.
func (p *Property) HasRating() bool {
	return p.Rating > 0
}

// SetImages replaces the gallery and keeps MainImage pointing at its first entry.
func (p *Property) SetImages(images []string) {
	p.Images = StringList(images)
	if len(images) > 0 {
		p.MainImage = images[0]
	} else {
		p.MainImage = ""
	}
}

// StringList is an ordered list of strings. It encodes as a JSON array and
// is stored as JSON text in the database. Decoding also accepts a string
// holding a JSON array, which is how older seed files stored these columns.
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("string list: expected array or encoded array, got %s", data)
	}
	if encoded == "" {
		*l = StringList{}
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return fmt.Errorf("string list: decode encoded array: %w", err)
	}
	*l = items
	return nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	b, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	default:
		return errors.New("string list: unsupported scan source")
	}
}

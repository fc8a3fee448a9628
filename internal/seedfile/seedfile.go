// Package seedfile reads and writes the JSON array of listing records that
// the generator produces and the seeders consume.
package seedfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/pkg/storage"
)

var (
	// ErrNotFound means the seed file does not exist on the disk.
	ErrNotFound = errors.New("seedfile: not found")
	// ErrMalformed means the file is not a JSON array of records.
	ErrMalformed = errors.New("seedfile: malformed")
)

// Encode renders records as a two-space indented JSON array with a trailing
// newline. Non-ASCII text and HTML characters are written literally.
func Encode(records []models.Property) ([]byte, error) {
	if records == nil {
		records = []models.Property{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("seedfile: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a JSON array of records. Amenities and images may be arrays
// or strings holding an encoded array.
func Decode(data []byte) ([]models.Property, error) {
	var records []models.Property
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrMalformed)
	}
	return records, nil
}

// Write encodes records to path on disk.
func Write(disk storage.Disk, path string, records []models.Property) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := disk.Put(path, data); err != nil {
		return fmt.Errorf("seedfile: write %s: %w", path, err)
	}
	return nil
}

// Read loads and decodes the seed file at path.
func Read(disk storage.Disk, path string) ([]models.Property, error) {
	data, err := disk.Get(path)
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("seedfile: read %s: %w", path, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Backup copies path to path+".bak" when the file exists.
func Backup(disk storage.Disk, path string) (string, error) {
	dst := path + ".bak"
	if !disk.Exists(path) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := disk.Copy(path, dst); err != nil {
		return "", fmt.Errorf("seedfile: backup %s: %w", path, err)
	}
	return dst, nil
}

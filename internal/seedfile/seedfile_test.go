package seedfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/internal/generator"
	"github.com/casasbr/seedgen/internal/random"
	"github.com/casasbr/seedgen/pkg/storage"
)

func TestWriteReadKeepsRecords(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")
	records, err := generator.New(catalog.Default(), random.New(21)).Generate(50)
	require.NoError(t, err)

	require.NoError(t, Write(disk, "seed-data.json", records))
	back, err := Read(disk, "seed-data.json")
	require.NoError(t, err)
	assert.Equal(t, records, back)
}

func TestEncodeLayout(t *testing.T) {
	p := models.Property{
		Title:     "Aconchegante Chácara em São Paulo",
		Address:   "Rua A & B, 10",
		Amenities: nil,
	}
	p.SetImages([]string{"/properties/a.jpg"})

	data, err := Encode([]models.Property{p})
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"title\": "), out)
	assert.True(t, strings.HasSuffix(out, "}\n]\n"))
	assert.Contains(t, out, "Chácara em São Paulo")
	assert.Contains(t, out, "Rua A & B")
	assert.Contains(t, out, `"amenities": []`)
	assert.NotContains(t, out, `\u`)
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDecodeLegacyEncodedLists(t *testing.T) {
	raw := `[{"title":"Casa","amenities":"[\"WiFi\",\"Piscina\"]","images":"[\"/properties/a.jpg\",\"/properties/b.jpg\"]","mainImage":"/properties/a.jpg","rating":0,"reviewCount":0}]`

	records, err := Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StringList{"WiFi", "Piscina"}, records[0].Amenities)
	assert.Equal(t, models.StringList{"/properties/a.jpg", "/properties/b.jpg"}, records[0].Images)

	again, err := Encode(records)
	require.NoError(t, err)
	assert.Contains(t, string(again), "\"amenities\": [\n")
}

func TestReadErrors(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	_, err := Read(disk, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, disk.Put("obj.json", []byte(`{"title":"x"}`)))
	_, err = Read(disk, "obj.json")
	assert.ErrorIs(t, err, ErrMalformed)

	require.NoError(t, disk.Put("null.json", []byte(`null`)))
	_, err = Read(disk, "null.json")
	assert.ErrorIs(t, err, ErrMalformed)

	require.NoError(t, disk.Put("bad-list.json", []byte(`[{"images":42}]`)))
	_, err = Read(disk, "bad-list.json")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBackup(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")
	require.NoError(t, disk.Put("seed.json", []byte("[]\n")))

	dst, err := Backup(disk, "seed.json")
	require.NoError(t, err)
	assert.Equal(t, "seed.json.bak", dst)
	assert.True(t, disk.Exists(dst))

	_, err = Backup(disk, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

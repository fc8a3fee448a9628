package migrations

import (
	"gorm.io/gorm"

	"github.com/casasbr/seedgen/app/models"
	"github.com/casasbr/seedgen/pkg/migration"
)

func init() {
	migration.Register("20250101000000_create_properties_table", &CreatePropertiesTable{})
}

// CreatePropertiesTable creates the listing table the seed file is loaded into.
type CreatePropertiesTable struct{}

func (m *CreatePropertiesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Property{})
}

func (m *CreatePropertiesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Property{})
}

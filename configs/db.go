package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema. The whole POS state lives in one key-value table.
	db.AutoMigrate(&entity.KVRecord{})
}

package infrastructure

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudkeep/cloudkeep/internal/model"
)

func Connect(path string) *gorm.DB {
	if path != ":memory:" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if _, err = os.Create(path); err != nil {
				log.Fatal(err)
			}
			log.Printf("Created database at %s\n", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	// An in-memory database exists per connection, so the pool must not
	// grow beyond one.
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Account{},
		&model.AccountUser{},
		&model.Instance{},
		&model.StorageBinding{},
		&model.Invitation{},
	); err != nil {
		log.Fatal(err)
	}
	addDefaultAdmin(db)
	return db
}

func addDefaultAdmin(db *gorm.DB) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: model.Hash("admin"),
			Role:     model.RoleAdmin,
		}
		result := db.Create(&user)
		if result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}

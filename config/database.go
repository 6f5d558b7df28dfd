package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	var (
		db  *gorm.DB
		err error
	)
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// Local default, matches the file database the app originally shipped with
		log.Println("DB_URL not set, using local sqlite database wwa.db")
		db, err = gorm.Open(sqlite.Open("wwa.db"), &gorm.Config{})
	}
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

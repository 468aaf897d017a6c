package config

import (
	"log"
	"os"

	"telecare-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared connection used by the running server. Tests open their
// own throwaway databases with Open.
var DB *gorm.DB

// Pragmas carried over from the previous deployment: WAL for concurrent
// readers, a 5s busy window instead of immediate SQLITE_BUSY failures, and
// enforced foreign keys.
const dsnParams = "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema. TranslateError lets the storage layer detect uniqueness
// violations as gorm.ErrDuplicatedKey.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+dsnParams), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Measurement{},
		&models.Symptom{},
		&models.Message{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// ConnectDB opens the database named by TELECARE_DB_PATH (default
// telecare.db) and stores the handle in DB. Fatal on failure: the server
// cannot serve anything without its store.
func ConnectDB() {
	path := os.Getenv("TELECARE_DB_PATH")
	if path == "" {
		path = "telecare.db"
	}

	db, err := Open(path)
	if err != nil {
		log.Fatal("[DB] Connection error: ", err)
	}

	DB = db
	log.Println("[DB] Connected to SQLite at " + path)
}

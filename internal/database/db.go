package database

import (
	"log"
	"time"

	"pm-assistant/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	Seed()
}

// Migrate runs the schema migrations on the current DB. Split out of
// Init so tests can migrate their own database.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Agent{},
		&models.AgentExecution{},
		&models.Requirement{},
		&models.Task{},
		&models.Risk{},
		&models.Document{},
		&models.FileUpload{},
	)
}

package database

import (
	"fmt"
	"log"

	config "github.com/kentanne/CCSPals-sub001/configs"
	"github.com/kentanne/CCSPals-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Schedule{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedUsers creates the admin account plus a demo learner and mentor so a
// fresh deployment can be exercised end to end. Safe to run repeatedly.
func SeedUsers() {
	seed := []struct {
		usernameKey string
		emailKey    string
		passwordKey string
		nameKey     string
		role        string
	}{
		{"ADMIN_USERNAME", "ADMIN_EMAIL", "ADMIN_PASSWORD", "ADMIN_FULL_NAME", "admin"},
		{"SEED_LEARNER_USERNAME", "SEED_LEARNER_EMAIL", "SEED_LEARNER_PASSWORD", "SEED_LEARNER_FULL_NAME", "learner"},
		{"SEED_MENTOR_USERNAME", "SEED_MENTOR_EMAIL", "SEED_MENTOR_PASSWORD", "SEED_MENTOR_FULL_NAME", "mentor"},
	}

	for _, s := range seed {
		email := config.Config(s.emailKey)
		password := config.Config(s.passwordKey)
		if email == "" || password == "" {
			continue
		}

		var count int64
		if err := DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for seed user %s: %v", email, err)
		}
		if count > 0 {
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("🔥 Failed to hash seed password: %v", err)
		}

		user := models.User{
			Username: config.Config(s.usernameKey),
			FullName: config.Config(s.nameKey),
			Email:    email,
			Password: string(hashedPassword),
			Role:     s.role,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Fatalf("🔥 Failed to seed user %s: %v", email, err)
		}
		log.Printf("✅ Seeded %s user %s", s.role, email)
	}
}

package database

import (
	"elearn/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	if err := RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Course{},
		&models.Section{},
		&models.CourseInstructor{},
		&models.Enrollment{},
		&models.Review{},
		&models.Wishlist{},
	)
	if err != nil {
		return err
	}

	// Backstop uniqueness constraints the engine-side checks rely on.
	// A slug race between check and insert, or a double-submitted enrollment,
	// fails here instead of admitting a duplicate row.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_courses_title_slug
		ON courses (title_slug) WHERE status != 'Deleted'`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollments_active
		ON enrollments (user_id, course_id) WHERE status = 'Enrolled' OR status = 'Pending'`).Error; err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}

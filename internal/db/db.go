package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/config"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Animal{},
		&models.Specialty{},
		&models.Veterinarian{},
		&models.Receptionist{},
		&models.User{},
		&models.VetSchedule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	installOverlapGuard(db)
	seedAdmin(db, cfg)

	return db
}

// overlapGuardDDL adds a Postgres exclusion constraint so that two
// non-cancelled appointments for the same vet can never hold overlapping
// [start_time, end_time) ranges, even when two requests pass the
// application-level conflict check concurrently. The columns migrate as
// timestamptz, so the range must be tstzrange.
const overlapGuardDDL = `
        DO $$
        BEGIN
            ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_double_booking
                EXCLUDE USING gist (
                    veterinarian_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                ) WHERE (status <> 'cancelled');
        EXCEPTION
            WHEN duplicate_table THEN NULL;
            WHEN duplicate_object THEN NULL;
        END $$;
    `

// Conflict detection relies on this constraint as the correctness backstop;
// a server running without it must not come up.
func installOverlapGuard(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to install btree_gist extension")
	}

	if err := db.Exec(overlapGuardDDL).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to install appointment overlap constraint")
	}
}

// seedAdmin guarantees at least one admin account exists so the clinic can be
// administered on a fresh database.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("failed to check for admin account")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash seed admin password")
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin account")
		return
	}

	log.Info().Str("email", admin.Email).Msg("seeded admin account")
}

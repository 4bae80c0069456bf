package postgres

import (
	"gorm.io/gorm"

	"github.com/salem59915-web/rex-backend/internal/domain/ports"
)

// RunMigrations creates or updates every table, including the
// order-management skeleton that has no procedures yet.
func RunMigrations(db *gorm.DB, log ports.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&UserRow{},
		&ModelRow{},
		&ContentCreatorRow{},
		&VideoProductionRow{},
		&VoiceArtistRow{},
		&ContentWritingRow{},
		&BannerRow{},
		&ServiceRequestRow{},
		&ClientRow{},
		&OrderRow{},
		&OrderMessageRow{},
	)
	if err != nil {
		log.Error("migrations failed", "error", err)
		return err
	}

	log.Info("migrations completed")
	return nil
}

package db

import (
	"gorm.io/gorm"

	"github.com/aurorapdrrmo/sitrep-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity + event registry
		&types.User{},
		&types.Typhoon{},

		// Report tables
		&types.Weather{},
		&types.Casualty{},
		&types.Injured{},
		&types.Missing{},
		&types.PreEmptiveReport{},
		&types.Road{},
		&types.Bridge{},
		&types.Communication{},
		&types.ElectricityService{},
		&types.WaterService{},
		&types.WaterLevel{},
		&types.IncidentMonitored{},
		&types.AffectedTourist{},
		&types.DamagedHouseReport{},
		&types.ResponseOperation{},
		&types.AssistanceExtended{},
		&types.AssistanceProvidedLgu{},
		&types.SuspensionOfClass{},
		&types.SuspensionOfWork{},
		&types.AgricultureReport{},
		&types.UscDeclaration{},
		&types.PrePositioning{},

		// Audit trail
		&types.ModificationEntry{},
	)
}

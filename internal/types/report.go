package types

import (
	"time"

	"github.com/google/uuid"
)

// ReportKind is the closed set of report entities scoped to a typhoon.
// History lookups key on it instead of matching free-form type strings.
type ReportKind string

const (
	KindWeather               ReportKind = "weather"
	KindCasualty              ReportKind = "casualty"
	KindInjured               ReportKind = "injured"
	KindMissing               ReportKind = "missing"
	KindPreEmptiveReport      ReportKind = "pre_emptive_report"
	KindRoad                  ReportKind = "road"
	KindBridge                ReportKind = "bridge"
	KindCommunication         ReportKind = "communication"
	KindElectricityService    ReportKind = "electricity_service"
	KindWaterService          ReportKind = "water_service"
	KindWaterLevel            ReportKind = "water_level"
	KindIncidentMonitored     ReportKind = "incident_monitored"
	KindAffectedTourist       ReportKind = "affected_tourist"
	KindDamagedHouseReport    ReportKind = "damaged_house_report"
	KindResponseOperation     ReportKind = "response_operation"
	KindAssistanceExtended    ReportKind = "assistance_extended"
	KindAssistanceProvidedLgu ReportKind = "assistance_provided_lgu"
	KindSuspensionOfClass     ReportKind = "suspension_of_class"
	KindSuspensionOfWork      ReportKind = "suspension_of_work"
	KindAgricultureReport     ReportKind = "agriculture_report"
	KindUscDeclaration        ReportKind = "usc_declaration"
	KindPrePositioning        ReportKind = "pre_positioning"
)

// AllReportKinds lists every report kind in table order.
func AllReportKinds() []ReportKind {
	return []ReportKind{
		KindWeather, KindCasualty, KindInjured, KindMissing,
		KindPreEmptiveReport, KindRoad, KindBridge, KindCommunication,
		KindElectricityService, KindWaterService, KindWaterLevel,
		KindIncidentMonitored, KindAffectedTourist, KindDamagedHouseReport,
		KindResponseOperation, KindAssistanceExtended, KindAssistanceProvidedLgu,
		KindSuspensionOfClass, KindSuspensionOfWork, KindAgricultureReport,
		KindUscDeclaration, KindPrePositioning,
	}
}

// Report is the shape shared by every typhoon-scoped report entity.
// Implemented on pointer receivers; ReportMeta provides everything except
// the kind tag and the trackable-field projection.
type Report interface {
	ReportKind() ReportKind
	TableName() string
	ReportID() uuid.UUID
	SetReportID(id uuid.UUID)
	TyphoonRef() *uuid.UUID
	SetTyphoonRef(id *uuid.UUID)
	SetCreator(id uuid.UUID)
	SetUpdater(id uuid.UUID)
	CreatedAtTime() time.Time
	// FieldValues projects the trackable domain fields keyed by column name.
	FieldValues() map[string]any
}

// ReportMeta carries the columns common to every report table. The typhoon
// reference stays nullable: rows predating the typhoon feature carry no
// association and are recovered by the relink utility.
type ReportMeta struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TyphoonID       *uuid.UUID `gorm:"type:uuid;index" json:"typhoon_id,omitempty"`
	CreatorID       uuid.UUID  `gorm:"type:uuid;column:creator_id" json:"creator_id"`
	LastUpdatedByID uuid.UUID  `gorm:"type:uuid;column:last_updated_by_id" json:"last_updated_by_id"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

func (m *ReportMeta) ReportID() uuid.UUID         { return m.ID }
func (m *ReportMeta) SetReportID(id uuid.UUID)    { m.ID = id }
func (m *ReportMeta) TyphoonRef() *uuid.UUID      { return m.TyphoonID }
func (m *ReportMeta) SetTyphoonRef(id *uuid.UUID) { m.TyphoonID = id }
func (m *ReportMeta) SetCreator(id uuid.UUID)     { m.CreatorID = id }
func (m *ReportMeta) SetUpdater(id uuid.UUID)     { m.LastUpdatedByID = id }
func (m *ReportMeta) CreatedAtTime() time.Time    { return m.CreatedAt }

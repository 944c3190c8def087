package types

// IncidentMonitored is a free-form incident under monitoring.
type IncidentMonitored struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Barangay     string `gorm:"column:barangay" json:"barangay"`
	IncidentType string `gorm:"not null;column:incident_type" json:"incident_type"`
	Description  string `gorm:"column:description" json:"description"`
	OccurredAt   string `gorm:"column:occurred_at" json:"occurred_at"`
	ActionsTaken string `gorm:"column:actions_taken" json:"actions_taken"`
}

func (IncidentMonitored) TableName() string { return "incident_monitored" }

func (i *IncidentMonitored) ReportKind() ReportKind { return KindIncidentMonitored }

func (i *IncidentMonitored) FieldValues() map[string]any {
	return map[string]any{
		"municipality":  i.Municipality,
		"barangay":      i.Barangay,
		"incident_type": i.IncidentType,
		"description":   i.Description,
		"occurred_at":   i.OccurredAt,
		"actions_taken": i.ActionsTaken,
	}
}

// AffectedTourist counts stranded or affected tourists at a location.
type AffectedTourist struct {
	ReportMeta   `gorm:"embedded"`
	Location     string `gorm:"not null;column:location" json:"location"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Count        int    `gorm:"column:count" json:"count"`
	Nationality  string `gorm:"column:nationality" json:"nationality"`
	Status       string `gorm:"column:status" json:"status"`
}

func (AffectedTourist) TableName() string { return "affected_tourist" }

func (a *AffectedTourist) ReportKind() ReportKind { return KindAffectedTourist }

func (a *AffectedTourist) FieldValues() map[string]any {
	return map[string]any{
		"location":     a.Location,
		"municipality": a.Municipality,
		"count":        a.Count,
		"nationality":  a.Nationality,
		"status":       a.Status,
	}
}

// ResponseOperation records a response activity conducted in the field.
type ResponseOperation struct {
	ReportMeta      `gorm:"embedded"`
	Municipality    string `gorm:"not null;column:municipality" json:"municipality"`
	Team            string `gorm:"not null;column:team" json:"team"`
	Activity        string `gorm:"column:activity" json:"activity"`
	PersonsAssisted int    `gorm:"column:persons_assisted" json:"persons_assisted"`
	ConductedAt     string `gorm:"column:conducted_at" json:"conducted_at"`
}

func (ResponseOperation) TableName() string { return "response_operation" }

func (r *ResponseOperation) ReportKind() ReportKind { return KindResponseOperation }

func (r *ResponseOperation) FieldValues() map[string]any {
	return map[string]any{
		"municipality":     r.Municipality,
		"team":             r.Team,
		"activity":         r.Activity,
		"persons_assisted": r.PersonsAssisted,
		"conducted_at":     r.ConductedAt,
	}
}

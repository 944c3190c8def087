package types

// PreEmptiveReport counts families and persons pre-emptively evacuated.
type PreEmptiveReport struct {
	ReportMeta       `gorm:"embedded"`
	Municipality     string `gorm:"not null;column:municipality" json:"municipality"`
	Barangay         string `gorm:"not null;column:barangay" json:"barangay"`
	Families         int    `gorm:"column:families" json:"families"`
	Persons          int    `gorm:"column:persons" json:"persons"`
	EvacuationCenter string `gorm:"column:evacuation_center" json:"evacuation_center"`
}

func (PreEmptiveReport) TableName() string { return "pre_emptive_report" }

func (p *PreEmptiveReport) ReportKind() ReportKind { return KindPreEmptiveReport }

func (p *PreEmptiveReport) FieldValues() map[string]any {
	return map[string]any{
		"municipality":      p.Municipality,
		"barangay":          p.Barangay,
		"families":          p.Families,
		"persons":           p.Persons,
		"evacuation_center": p.EvacuationCenter,
	}
}

// PrePositioning records resources staged ahead of landfall.
type PrePositioning struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	ResourceType string `gorm:"not null;column:resource_type" json:"resource_type"`
	Quantity     int    `gorm:"column:quantity" json:"quantity"`
	Location     string `gorm:"column:location" json:"location"`
}

func (PrePositioning) TableName() string { return "pre_positioning" }

func (p *PrePositioning) ReportKind() ReportKind { return KindPrePositioning }

func (p *PrePositioning) FieldValues() map[string]any {
	return map[string]any{
		"municipality":  p.Municipality,
		"resource_type": p.ResourceType,
		"quantity":      p.Quantity,
		"location":      p.Location,
	}
}

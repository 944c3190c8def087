package types

// Communication is a telco service status report.
type Communication struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Provider     string `gorm:"not null;column:provider" json:"provider"`
	Status       string `gorm:"column:status" json:"status"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (Communication) TableName() string { return "communication" }

func (c *Communication) ReportKind() ReportKind { return KindCommunication }

func (c *Communication) FieldValues() map[string]any {
	return map[string]any{
		"municipality": c.Municipality,
		"provider":     c.Provider,
		"status":       c.Status,
		"remarks":      c.Remarks,
	}
}

// ElectricityService is a power service status report.
type ElectricityService struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Status       string `gorm:"column:status" json:"status"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (ElectricityService) TableName() string { return "electricity_service" }

func (e *ElectricityService) ReportKind() ReportKind { return KindElectricityService }

func (e *ElectricityService) FieldValues() map[string]any {
	return map[string]any{
		"municipality": e.Municipality,
		"status":       e.Status,
		"remarks":      e.Remarks,
	}
}

// WaterService is a water utility status report.
type WaterService struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Provider     string `gorm:"column:provider" json:"provider"`
	Status       string `gorm:"column:status" json:"status"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (WaterService) TableName() string { return "water_service" }

func (w *WaterService) ReportKind() ReportKind { return KindWaterService }

func (w *WaterService) FieldValues() map[string]any {
	return map[string]any{
		"municipality": w.Municipality,
		"provider":     w.Provider,
		"status":       w.Status,
		"remarks":      w.Remarks,
	}
}

// WaterLevel is a river gauging station observation.
type WaterLevel struct {
	ReportMeta   `gorm:"embedded"`
	Station      string  `gorm:"not null;column:station" json:"station"`
	River        string  `gorm:"column:river" json:"river"`
	Municipality string  `gorm:"not null;column:municipality" json:"municipality"`
	LevelM       float64 `gorm:"column:level_m" json:"level_m"`
	AlertLevel   string  `gorm:"column:alert_level" json:"alert_level"`
	ObservedAt   string  `gorm:"column:observed_at" json:"observed_at"`
}

func (WaterLevel) TableName() string { return "water_level" }

func (w *WaterLevel) ReportKind() ReportKind { return KindWaterLevel }

func (w *WaterLevel) FieldValues() map[string]any {
	return map[string]any{
		"station":      w.Station,
		"river":        w.River,
		"municipality": w.Municipality,
		"level_m":      w.LevelM,
		"alert_level":  w.AlertLevel,
		"observed_at":  w.ObservedAt,
	}
}

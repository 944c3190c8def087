package types

// Weather is a per-municipality weather observation during a typhoon.
type Weather struct {
	ReportMeta    `gorm:"embedded"`
	Municipality  string  `gorm:"not null;column:municipality" json:"municipality"`
	SkyCondition  string  `gorm:"column:sky_condition" json:"sky_condition"`
	WindSpeedKph  float64 `gorm:"column:wind_speed_kph" json:"wind_speed_kph"`
	WindDirection string  `gorm:"column:wind_direction" json:"wind_direction"`
	RainfallMm    float64 `gorm:"column:rainfall_mm" json:"rainfall_mm"`
	ObservedAt    string  `gorm:"column:observed_at" json:"observed_at"`
}

func (Weather) TableName() string { return "weather" }

func (w *Weather) ReportKind() ReportKind { return KindWeather }

func (w *Weather) FieldValues() map[string]any {
	return map[string]any{
		"municipality":   w.Municipality,
		"sky_condition":  w.SkyCondition,
		"wind_speed_kph": w.WindSpeedKph,
		"wind_direction": w.WindDirection,
		"rainfall_mm":    w.RainfallMm,
		"observed_at":    w.ObservedAt,
	}
}

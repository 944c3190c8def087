package types

// Road is a road-section passability report.
type Road struct {
	ReportMeta   `gorm:"embedded"`
	RoadName     string `gorm:"not null;column:road_name" json:"road_name"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Status       string `gorm:"column:status" json:"status"`
	Cause        string `gorm:"column:cause" json:"cause"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (Road) TableName() string { return "road" }

func (r *Road) ReportKind() ReportKind { return KindRoad }

func (r *Road) FieldValues() map[string]any {
	return map[string]any{
		"road_name":    r.RoadName,
		"municipality": r.Municipality,
		"status":       r.Status,
		"cause":        r.Cause,
		"remarks":      r.Remarks,
	}
}

// Bridge is a bridge passability report.
type Bridge struct {
	ReportMeta   `gorm:"embedded"`
	BridgeName   string `gorm:"not null;column:bridge_name" json:"bridge_name"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	Status       string `gorm:"column:status" json:"status"`
	Cause        string `gorm:"column:cause" json:"cause"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (Bridge) TableName() string { return "bridge" }

func (b *Bridge) ReportKind() ReportKind { return KindBridge }

func (b *Bridge) FieldValues() map[string]any {
	return map[string]any{
		"bridge_name":  b.BridgeName,
		"municipality": b.Municipality,
		"status":       b.Status,
		"cause":        b.Cause,
		"remarks":      b.Remarks,
	}
}

// DamagedHouseReport counts damaged houses per barangay.
type DamagedHouseReport struct {
	ReportMeta       `gorm:"embedded"`
	Municipality     string `gorm:"not null;column:municipality" json:"municipality"`
	Barangay         string `gorm:"not null;column:barangay" json:"barangay"`
	PartiallyDamaged int    `gorm:"column:partially_damaged" json:"partially_damaged"`
	TotallyDamaged   int    `gorm:"column:totally_damaged" json:"totally_damaged"`
}

func (DamagedHouseReport) TableName() string { return "damaged_house_report" }

func (d *DamagedHouseReport) ReportKind() ReportKind { return KindDamagedHouseReport }

func (d *DamagedHouseReport) FieldValues() map[string]any {
	return map[string]any{
		"municipality":      d.Municipality,
		"barangay":          d.Barangay,
		"partially_damaged": d.PartiallyDamaged,
		"totally_damaged":   d.TotallyDamaged,
	}
}

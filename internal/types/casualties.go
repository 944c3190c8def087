package types

// Casualty is a reported fatality.
type Casualty struct {
	ReportMeta     `gorm:"embedded"`
	Name           string `gorm:"not null;column:name" json:"name"`
	Age            int    `gorm:"column:age" json:"age"`
	Sex            string `gorm:"column:sex" json:"sex"`
	Address        string `gorm:"column:address" json:"address"`
	Municipality   string `gorm:"not null;column:municipality" json:"municipality"`
	CauseOfDeath   string `gorm:"column:cause_of_death" json:"cause_of_death"`
	DateOfIncident string `gorm:"column:date_of_incident" json:"date_of_incident"`
}

func (Casualty) TableName() string { return "casualty" }

func (c *Casualty) ReportKind() ReportKind { return KindCasualty }

func (c *Casualty) FieldValues() map[string]any {
	return map[string]any{
		"name":             c.Name,
		"age":              c.Age,
		"sex":              c.Sex,
		"address":          c.Address,
		"municipality":     c.Municipality,
		"cause_of_death":   c.CauseOfDeath,
		"date_of_incident": c.DateOfIncident,
	}
}

// Injured is a reported injury.
type Injured struct {
	ReportMeta     `gorm:"embedded"`
	Name           string `gorm:"not null;column:name" json:"name"`
	Age            int    `gorm:"column:age" json:"age"`
	Sex            string `gorm:"column:sex" json:"sex"`
	Municipality   string `gorm:"not null;column:municipality" json:"municipality"`
	NatureOfInjury string `gorm:"column:nature_of_injury" json:"nature_of_injury"`
	Status         string `gorm:"column:status" json:"status"`
}

func (Injured) TableName() string { return "injured" }

func (i *Injured) ReportKind() ReportKind { return KindInjured }

func (i *Injured) FieldValues() map[string]any {
	return map[string]any{
		"name":             i.Name,
		"age":              i.Age,
		"sex":              i.Sex,
		"municipality":     i.Municipality,
		"nature_of_injury": i.NatureOfInjury,
		"status":           i.Status,
	}
}

// Missing is a reported missing person.
type Missing struct {
	ReportMeta   `gorm:"embedded"`
	Name         string `gorm:"not null;column:name" json:"name"`
	Age          int    `gorm:"column:age" json:"age"`
	Sex          string `gorm:"column:sex" json:"sex"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	LastSeenAt   string `gorm:"column:last_seen_at" json:"last_seen_at"`
	Remarks      string `gorm:"column:remarks" json:"remarks"`
}

func (Missing) TableName() string { return "missing" }

func (m *Missing) ReportKind() ReportKind { return KindMissing }

func (m *Missing) FieldValues() map[string]any {
	return map[string]any{
		"name":         m.Name,
		"age":          m.Age,
		"sex":          m.Sex,
		"municipality": m.Municipality,
		"last_seen_at": m.LastSeenAt,
		"remarks":      m.Remarks,
	}
}

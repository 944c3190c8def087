package types

// SuspensionOfClass is a class suspension declaration.
type SuspensionOfClass struct {
	ReportMeta    `gorm:"embedded"`
	Municipality  string `gorm:"not null;column:municipality" json:"municipality"`
	Level         string `gorm:"column:level" json:"level"`
	DateSuspended string `gorm:"column:date_suspended" json:"date_suspended"`
	DeclaredBy    string `gorm:"column:declared_by" json:"declared_by"`
}

func (SuspensionOfClass) TableName() string { return "suspension_of_class" }

func (s *SuspensionOfClass) ReportKind() ReportKind { return KindSuspensionOfClass }

func (s *SuspensionOfClass) FieldValues() map[string]any {
	return map[string]any{
		"municipality":   s.Municipality,
		"level":          s.Level,
		"date_suspended": s.DateSuspended,
		"declared_by":    s.DeclaredBy,
	}
}

// SuspensionOfWork is a work suspension declaration.
type SuspensionOfWork struct {
	ReportMeta    `gorm:"embedded"`
	Municipality  string `gorm:"not null;column:municipality" json:"municipality"`
	Scope         string `gorm:"column:scope" json:"scope"`
	DateSuspended string `gorm:"column:date_suspended" json:"date_suspended"`
	DeclaredBy    string `gorm:"column:declared_by" json:"declared_by"`
}

func (SuspensionOfWork) TableName() string { return "suspension_of_work" }

func (s *SuspensionOfWork) ReportKind() ReportKind { return KindSuspensionOfWork }

func (s *SuspensionOfWork) FieldValues() map[string]any {
	return map[string]any{
		"municipality":   s.Municipality,
		"scope":          s.Scope,
		"date_suspended": s.DateSuspended,
		"declared_by":    s.DeclaredBy,
	}
}

// UscDeclaration is an LGU's state-of-calamity declaration.
type UscDeclaration struct {
	ReportMeta   `gorm:"embedded"`
	Municipality string `gorm:"not null;column:municipality" json:"municipality"`
	DeclaredAt   string `gorm:"column:declared_at" json:"declared_at"`
	ResolutionNo string `gorm:"column:resolution_no" json:"resolution_no"`
	Status       string `gorm:"column:status" json:"status"`
}

func (UscDeclaration) TableName() string { return "usc_declaration" }

func (u *UscDeclaration) ReportKind() ReportKind { return KindUscDeclaration }

func (u *UscDeclaration) FieldValues() map[string]any {
	return map[string]any{
		"municipality":  u.Municipality,
		"declared_at":   u.DeclaredAt,
		"resolution_no": u.ResolutionNo,
		"status":        u.Status,
	}
}

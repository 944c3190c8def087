package types

// AssistanceExtended is relief assistance received from an outside source.
type AssistanceExtended struct {
	ReportMeta     `gorm:"embedded"`
	Source         string  `gorm:"not null;column:source" json:"source"`
	Municipality   string  `gorm:"not null;column:municipality" json:"municipality"`
	AssistanceType string  `gorm:"column:assistance_type" json:"assistance_type"`
	Quantity       string  `gorm:"column:quantity" json:"quantity"`
	Amount         float64 `gorm:"column:amount" json:"amount"`
}

func (AssistanceExtended) TableName() string { return "assistance_extended" }

func (a *AssistanceExtended) ReportKind() ReportKind { return KindAssistanceExtended }

func (a *AssistanceExtended) FieldValues() map[string]any {
	return map[string]any{
		"source":          a.Source,
		"municipality":    a.Municipality,
		"assistance_type": a.AssistanceType,
		"quantity":        a.Quantity,
		"amount":          a.Amount,
	}
}

// AssistanceProvidedLgu is assistance an LGU provided to its constituents.
type AssistanceProvidedLgu struct {
	ReportMeta     `gorm:"embedded"`
	Lgu            string  `gorm:"not null;column:lgu" json:"lgu"`
	AssistanceType string  `gorm:"column:assistance_type" json:"assistance_type"`
	Quantity       string  `gorm:"column:quantity" json:"quantity"`
	Amount         float64 `gorm:"column:amount" json:"amount"`
	Remarks        string  `gorm:"column:remarks" json:"remarks"`
}

func (AssistanceProvidedLgu) TableName() string { return "assistance_provided_lgu" }

func (a *AssistanceProvidedLgu) ReportKind() ReportKind { return KindAssistanceProvidedLgu }

func (a *AssistanceProvidedLgu) FieldValues() map[string]any {
	return map[string]any{
		"lgu":             a.Lgu,
		"assistance_type": a.AssistanceType,
		"quantity":        a.Quantity,
		"amount":          a.Amount,
		"remarks":         a.Remarks,
	}
}

// AgricultureReport records crop and fishery damage estimates.
type AgricultureReport struct {
	ReportMeta      `gorm:"embedded"`
	Municipality    string  `gorm:"not null;column:municipality" json:"municipality"`
	Commodity       string  `gorm:"not null;column:commodity" json:"commodity"`
	AreaAffectedHa  float64 `gorm:"column:area_affected_ha" json:"area_affected_ha"`
	EstimatedLosses float64 `gorm:"column:estimated_losses" json:"estimated_losses"`
}

func (AgricultureReport) TableName() string { return "agriculture_report" }

func (a *AgricultureReport) ReportKind() ReportKind { return KindAgricultureReport }

func (a *AgricultureReport) FieldValues() map[string]any {
	return map[string]any{
		"municipality":     a.Municipality,
		"commodity":        a.Commodity,
		"area_affected_ha": a.AreaAffectedHa,
		"estimated_losses": a.EstimatedLosses,
	}
}

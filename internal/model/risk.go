package model

// RiskLevel is the bankruptcy-risk bucket of a taxed company.
// Keep these values stable; they are part of the JSON contract.
type RiskLevel string

const (
	RiskImminentBankruptcy    RiskLevel = "imminent_bankruptcy"
	RiskSevereDifficulty      RiskLevel = "severe_difficulty"
	RiskStrainedSituation     RiskLevel = "strained_situation"
	RiskRestructuringRequired RiskLevel = "restructuring_required"
	RiskCriticalMargin        RiskLevel = "critical_margin"
	RiskHeightenedMonitoring  RiskLevel = "heightened_monitoring"
	RiskStableSituation       RiskLevel = "stable_situation"
)

var riskLabels = map[RiskLevel]string{
	RiskImminentBankruptcy:    "Imminent bankruptcy",
	RiskSevereDifficulty:      "Severe difficulty",
	RiskStrainedSituation:     "Strained situation",
	RiskRestructuringRequired: "Restructuring required",
	RiskCriticalMargin:        "Critical margin",
	RiskHeightenedMonitoring:  "Heightened monitoring",
	RiskStableSituation:       "Stable situation",
}

// Label is the human-friendly name of the level.
func (r RiskLevel) Label() string {
	if l, ok := riskLabels[r]; ok {
		return l
	}
	return string(r)
}

// SurvivalStatus is a coarse tag summarizing a RiskLevel.
type SurvivalStatus string

const (
	StatusHealthy    SurvivalStatus = "healthy"
	StatusWarning    SurvivalStatus = "warning"
	StatusStruggling SurvivalStatus = "struggling"
	StatusCritical   SurvivalStatus = "critical"
	StatusFailed     SurvivalStatus = "failed"
)

// RiskAssessment is the classifier output.
// BankruptcyYear is nil when no failure year applies.
type RiskAssessment struct {
	Level          RiskLevel      `json:"bankruptcy_risk"`
	BankruptcyYear *int           `json:"bankruptcy_year"`
	Status         SurvivalStatus `json:"survival_status"`
}

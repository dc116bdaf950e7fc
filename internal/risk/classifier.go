// Package risk classifies the survival outlook of a company at the end of a
// taxed projection.
package risk

import (
	"math"

	"zucit/internal/model"
)

const (
	// reserveShare is the fraction of initial valuation assumed held as cash.
	reserveShare = 0.05
	// marginRevenueRatio converts initial profit into an estimated revenue (8% margin).
	marginRevenueRatio = 0.08

	imminentMonths = 6
	severeMonths   = 18

	criticalMargin   = 0.02
	monitoringMargin = 0.05

	restructuringDelayYears = 2
	criticalMarginDelay     = 3
)

// Snapshot is the final-year state the classifier looks at.
type Snapshot struct {
	InitialValuation float64
	InitialProfit    float64
	InitialEmployees int

	FinalProfit    float64
	FinalValuation float64
	FinalZucmanTax float64

	Years int
}

// NetProfit is final profit after the valuation tax.
func (s Snapshot) NetProfit() float64 {
	return s.FinalProfit - s.FinalZucmanTax
}

// Classifier is stateless apart from the calendar base year.
type Classifier struct {
	BaseYear int
}

func New(baseYear int) Classifier {
	return Classifier{BaseYear: baseYear}
}

// Assess applies the rules top to bottom; the first match wins.
// A negative net profit goes through burn-rate analysis, otherwise margin analysis.
func (c Classifier) Assess(s Snapshot) model.RiskAssessment {
	net := s.NetProfit()
	endYear := c.BaseYear + s.Years

	if net < 0 {
		months := MonthsOfSurvival(s.InitialValuation, net)
		switch {
		case months < imminentMonths:
			return assessment(model.RiskImminentBankruptcy, yearPtr(endYear), model.StatusFailed)
		case months < severeMonths:
			return assessment(model.RiskSevereDifficulty, yearPtr(endYear+int(math.Floor(months/12))), model.StatusCritical)
		default:
			return assessment(model.RiskStrainedSituation, nil, model.StatusStruggling)
		}
	}

	margin := NetMargin(s.InitialProfit, net)
	switch {
	case margin < 0:
		return assessment(model.RiskRestructuringRequired, yearPtr(endYear+restructuringDelayYears), model.StatusCritical)
	case margin < criticalMargin:
		return assessment(model.RiskCriticalMargin, yearPtr(endYear+criticalMarginDelay), model.StatusCritical)
	case margin < monitoringMargin:
		return assessment(model.RiskHeightenedMonitoring, nil, model.StatusWarning)
	default:
		return assessment(model.RiskStableSituation, nil, model.StatusHealthy)
	}
}

// MonthsOfSurvival estimates how long cash reserves cover a negative net profit.
// It is +Inf when there is no burn.
func MonthsOfSurvival(initialValuation, netProfit float64) float64 {
	reserves := initialValuation * reserveShare
	monthlyBurn := math.Abs(netProfit) / 12
	if monthlyBurn == 0 {
		return math.Inf(1)
	}
	return reserves / monthlyBurn
}

// NetMargin is net profit over the revenue implied by an 8% initial margin.
func NetMargin(initialProfit, netProfit float64) float64 {
	revenue := initialProfit / marginRevenueRatio
	if revenue <= 0 {
		return 0
	}
	return netProfit / revenue
}

func assessment(level model.RiskLevel, year *int, status model.SurvivalStatus) model.RiskAssessment {
	return model.RiskAssessment{Level: level, BankruptcyYear: year, Status: status}
}

func yearPtr(y int) *int { return &y }

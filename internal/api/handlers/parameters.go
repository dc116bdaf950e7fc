package handlers

import (
	"net/http"

	"zucit/internal/api/models"
	"zucit/internal/model"

	"github.com/gin-gonic/gin"
)

// ParameterHandler exposes the economic calibration the engine runs with.
type ParameterHandler struct {
	params model.EconomicParameters
}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler(params model.EconomicParameters) *ParameterHandler {
	return &ParameterHandler{params: params}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	c.JSON(http.StatusOK, models.ParametersResponse{Parameters: DescribeParameters(h.params)})
}

// DescribeParameters lists p with a short description of each field.
func DescribeParameters(p model.EconomicParameters) []models.ParameterInfo {
	return []models.ParameterInfo{
		{Name: "zucman_tax_rate", Type: "float", Description: "Annual Zucman tax as a fraction of valuation", Value: p.ZucmanTaxRate},
		{Name: "normal_profit_tax", Type: "float", Description: "Corporate profit tax rate", Value: p.NormalProfitTax},
		{Name: "default_horizon", Type: "int", Description: "Years simulated when the request sets none", Value: p.DefaultHorizon},
		{Name: "base_year", Type: "int", Description: "Calendar year of simulation year 0", Value: p.BaseYear},
		{Name: "investment_elasticity", Type: "float", Description: "Growth response to the investment capacity ratio", Value: p.InvestmentElasticity},
		{Name: "investment_ratio_of_profit", Type: "float", Description: "Share of profit normally reinvested", Value: p.InvestmentRatioOfProfit},
		{Name: "price_pass_through", Type: "float", Description: "Share of the tax passed on to prices", Value: p.PricePassThrough},
		{Name: "demand_elasticity", Type: "float", Description: "Demand response to a relative price increase", Value: p.DemandElasticity},
		{Name: "market_share_elasticity", Type: "float", Description: "Market share response to the cost increase", Value: p.MarketShareElasticity},
		{Name: "financing_cost_impact", Type: "float", Description: "Growth response to the cash-flow drain", Value: p.FinancingCostImpact},
		{Name: "productivity_employment_elasticity", Type: "float", Description: "Jobs lost per unit of productivity loss", Value: p.ProductivityEmploymentElasticity},
		{Name: "demand_employment_elasticity", Type: "float", Description: "Jobs lost per unit of demand loss", Value: p.DemandEmploymentElasticity},
	}
}

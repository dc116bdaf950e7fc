package models

import (
	"zucit/internal/analysis"
	"zucit/internal/model"
)

// SimulationResponse is the body returned by the v1 simulate endpoints.
type SimulationResponse struct {
	ID string `json:"id"`
	*model.SimulationResult
	Analysis analysis.Summary `json:"analysis"`
}

type CompanyListResponse struct {
	Companies []model.CompanyProfile `json:"companies"`
}

// ParametersResponse lists the active economic parameters.
type ParametersResponse struct {
	Parameters []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes one economic parameter.
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float" or "int"
	Description string `json:"description"`
	Value       any    `json:"value"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error codes returned by the API.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeCompanyNotFound   = "COMPANY_NOT_FOUND"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeExportError       = "EXPORT_ERROR"
	CodeRateLimited       = "RATE_LIMITED"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// NewError builds an ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

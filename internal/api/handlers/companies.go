package handlers

import (
	"net/http"

	"zucit/internal/api/models"
	"zucit/internal/data"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the example company catalog.
type CompanyHandler struct {
	catalog *data.Catalog
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(catalog *data.Catalog) *CompanyHandler {
	return &CompanyHandler{catalog: catalog}
}

// ListCompanies handles GET /api/v1/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, models.CompanyListResponse{Companies: h.catalog.List()})
}

// GetCompany handles GET /api/v1/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	profile, err := h.catalog.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeCompanyNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// LegacyGetCompany handles GET /company/:id with the historical error shape.
func (h *CompanyHandler) LegacyGetCompany(c *gin.Context) {
	profile, err := h.catalog.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

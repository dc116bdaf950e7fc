package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zucit/internal/analysis"
	"zucit/internal/api/models"
	"zucit/internal/data"
	"zucit/internal/logging"
	"zucit/internal/metrics"
	"zucit/internal/model"
	"zucit/internal/projection"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SimulationHandler handles projection requests.
type SimulationHandler struct {
	engine  *projection.Engine
	catalog *data.Catalog
	metrics *metrics.Metrics
}

// NewSimulationHandler creates a new simulation handler. m may be nil.
func NewSimulationHandler(engine *projection.Engine, catalog *data.Catalog, m *metrics.Metrics) *SimulationHandler {
	return &SimulationHandler{engine: engine, catalog: catalog, metrics: m}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	res := h.run(c, in)
	c.JSON(http.StatusOK, newSimulationResponse(res))
}

// SimulateCompany handles POST /api/v1/companies/:id/simulate
func (h *SimulationHandler) SimulateCompany(c *gin.Context) {
	profile, err := h.catalog.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeCompanyNotFound, err.Error()))
		return
	}

	var q models.CompanySimulateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}
	in := profile.Input(q.Years)
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidInput, err.Error()))
		return
	}

	res := h.run(c, in)
	c.JSON(http.StatusOK, newSimulationResponse(res))
}

// Export handles POST /api/v1/simulate/export?format=csv|xlsx
func (h *SimulationHandler) Export(c *gin.Context) {
	var q models.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}
	format := strings.ToLower(q.Format)
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeUnsupportedFormat,
				Message: fmt.Sprintf("unsupported export format %q", q.Format),
				Details: map[string]any{"supported": []string{"csv", "xlsx"}},
			},
		})
		return
	}

	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	res := h.run(c, in)

	var (
		buf         bytes.Buffer
		contentType string
	)
	switch format {
	case "csv":
		contentType = "text/csv"
		if err := projection.WriteTrajectoryCSV(&buf, res); err != nil {
			h.exportFailed(c, err)
			return
		}
	case "xlsx":
		contentType = xlsxContentType
		f, err := projection.WriteTrajectoryXLSX(res)
		if err != nil {
			h.exportFailed(c, err)
			return
		}
		defer f.Close()
		if _, err := f.WriteTo(&buf); err != nil {
			h.exportFailed(c, err)
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="zucit-simulation.%s"`, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// LegacySimulate handles POST /simulate and answers with the bare result.
func (h *SimulationHandler) LegacySimulate(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.run(c, in))
}

func (h *SimulationHandler) exportFailed(c *gin.Context, err error) {
	logging.FromContext(c.Request.Context()).Error("export failed", "error", err)
	c.JSON(http.StatusInternalServerError, models.NewError(models.CodeExportError, err.Error()))
}

// bindInput decodes and validates a SimulateRequest body, writing the error response itself.
func (h *SimulationHandler) bindInput(c *gin.Context) (model.SimulationInput, bool) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return model.SimulationInput{}, false
	}
	in := req.ToInput()
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidInput, err.Error()))
		return model.SimulationInput{}, false
	}
	return in, true
}

func (h *SimulationHandler) run(c *gin.Context, in model.SimulationInput) *model.SimulationResult {
	start := time.Now()
	res := h.engine.Run(in)
	took := time.Since(start)

	h.metrics.ObserveSimulation(res, took)
	logging.FromContext(c.Request.Context()).Info("simulation finished",
		"valuation", res.Input.Valuation,
		"years", len(res.Years)-1,
		"bankruptcy_risk", res.KPIs.Level,
		"duration", took,
	)
	return res
}

func newSimulationResponse(res *model.SimulationResult) models.SimulationResponse {
	return models.SimulationResponse{
		ID:               uuid.NewString(),
		SimulationResult: res,
		Analysis:         analysis.Summarize(res),
	}
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/middleware"
)

// payrollHandler handles HTTP requests related to payroll runs.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
	userService    portssvc.UserSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade, us portssvc.UserSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps, userService: us}
}

// registerPayrollRoutes registers routes related to payroll runs. The user
// service is needed for the admin-only authorization check.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade, userService portssvc.UserSvcFacade) {
	h := newPayrollHandler(payrollService, userService)

	runs := rg.Group("/payroll/runs")
	{
		runs.POST("", h.createRun)
		runs.GET("", h.listRuns)
		runs.GET("/:id", h.getRun)
		runs.POST("/:id/authorize", h.authorizeRun)
		runs.DELETE("/:id", h.deleteRun)
		runs.GET("/:id/bank-schedule", h.bankSchedule)
	}
}

// createRun godoc
// @Summary Build a payroll run
// @Description Builds a draft payroll run for the period, one payslip line per active employee. An existing draft for the same period is replaced.
// @Tags payroll
// @Accept json
// @Produce json
// @Param run body dto.CreatePayrollRunRequest true "Run period and options"
// @Success 201 {object} dto.PayrollRunResponse
// @Failure 400 {object} map[string]string "Invalid input or no eligible employees"
// @Failure 409 {object} map[string]string "A processed run already exists for the period"
// @Security BearerAuth
// @Router /payroll/runs [post]
func (h *payrollHandler) createRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRun", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	run, err := h.payrollService.CreateRun(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to build payroll run")
		return
	}

	logger.Info("Payroll run built",
		slog.String("run_id", run.RunID),
		slog.Int("month", run.Month),
		slog.Int("year", run.Year),
		slog.Int("employee_count", run.EmployeeCount))
	c.JSON(http.StatusCreated, dto.ToPayrollRunResponse(run))
}

// listRuns godoc
// @Summary List payroll runs
// @Description Retrieves payroll runs, most recent period first
// @Tags payroll
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPayrollRunsResponse
// @Security BearerAuth
// @Router /payroll/runs [get]
func (h *payrollHandler) listRuns(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	runs, err := h.payrollService.ListRuns(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list payroll runs")
		return
	}

	resp := dto.ListPayrollRunsResponse{Runs: make([]dto.PayrollRunResponse, len(runs))}
	for i := range runs {
		resp.Runs[i] = dto.ToPayrollRunResponse(&runs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getRun godoc
// @Summary Get a payroll run by ID
// @Description Retrieves a payroll run together with its payslip lines
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} map[string]string "Run not found"
// @Security BearerAuth
// @Router /payroll/runs/{id} [get]
func (h *payrollHandler) getRun(c *gin.Context) {
	run, err := h.payrollService.GetRunByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payroll run")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// authorizeRun godoc
// @Summary Authorize a payroll run
// @Description Atomically marks a draft run PROCESSED, posts the disbursement journal entry and applies account balance deltas
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 404 {object} map[string]string "Run not found or payroll ledger account missing"
// @Failure 409 {object} map[string]string "Run is not in DRAFT state"
// @Security BearerAuth
// @Router /payroll/runs/{id}/authorize [post]
func (h *payrollHandler) authorizeRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	runID := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	// Only admins may move money.
	caller, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to authorize payroll run")
		return
	}
	if caller.Role != domain.RoleAdmin {
		logger.Warn("Non-admin attempted run authorization", slog.String("run_id", runID))
		c.JSON(http.StatusForbidden, gin.H{"error": "only admins may authorize payroll runs"})
		return
	}

	run, err := h.payrollService.AuthorizeRun(c.Request.Context(), runID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidRunState):
			logger.Warn("Run not authorizable", slog.String("run_id", runID), slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrChartIncomplete):
			logger.Error("Payroll chart of accounts incomplete", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			respondError(c, err, "Failed to authorize payroll run")
		}
		return
	}

	logger.Info("Payroll run authorized",
		slog.String("run_id", run.RunID),
		slog.String("total_net", run.TotalNet.String()))
	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}

// deleteRun godoc
// @Summary Delete a draft payroll run
// @Description Deletes a draft run and its payslip lines. Processed runs cannot be deleted.
// @Tags payroll
// @Param id path string true "Run ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 409 {object} map[string]string "Run is not in DRAFT state"
// @Security BearerAuth
// @Router /payroll/runs/{id} [delete]
func (h *payrollHandler) deleteRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	runID := c.Param("id")

	if err := h.payrollService.DeleteDraftRun(c.Request.Context(), runID); err != nil {
		respondError(c, err, "Failed to delete payroll run")
		return
	}

	logger.Info("Payroll run deleted", slog.String("run_id", runID))
	c.Status(http.StatusNoContent)
}

// bankSchedule godoc
// @Summary Get the bank schedule for a processed run
// @Description Retrieves the payment-instruction listing (one row per payslip line) for a processed run
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} dto.BankScheduleResponse
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 409 {object} map[string]string "Run is not processed yet"
// @Security BearerAuth
// @Router /payroll/runs/{id}/bank-schedule [get]
func (h *payrollHandler) bankSchedule(c *gin.Context) {
	schedule, err := h.payrollService.BankSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build bank schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

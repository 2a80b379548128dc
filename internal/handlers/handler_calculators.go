package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plandesk/biz_planning_app/internal/core/calculators"
	"github.com/plandesk/biz_planning_app/internal/dto"
	"github.com/shopspring/decimal"
)

// calculatorHandler serves the stateless auxiliary calculators. No stored
// state is touched; every endpoint is a pure computation over its request.
type calculatorHandler struct{}

// registerCalculatorRoutes registers the calculator endpoints.
func registerCalculatorRoutes(rg *gin.RouterGroup) {
	h := &calculatorHandler{}

	calc := rg.Group("/calculators")
	{
		calc.POST("/loan", h.loan)
		calc.POST("/depreciation", h.depreciation)
		calc.POST("/payroll", h.payroll)
		calc.POST("/incometax", h.incomeTax)
		calc.POST("/creditcapacity", h.creditCapacity)
	}
}

// loan godoc
// @Summary Amortization schedule
// @Description Computes a fixed-annuity loan schedule
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   loan body dto.LoanRequest true "Loan terms"
// @Success 200 {object} calculators.LoanSchedule
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculators/loan [post]
func (h *calculatorHandler) loan(c *gin.Context) {
	var req dto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, calculators.AmortizationSchedule(req.ToLoanTerms()))
}

// depreciation godoc
// @Summary Depreciation schedule
// @Description Computes a straight-line schedule with half-year convention and low-value write-off
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   asset body dto.DepreciationRequest true "Asset parameters"
// @Success 200 {object} dto.DepreciationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculators/depreciation [post]
func (h *calculatorHandler) depreciation(c *gin.Context) {
	var req dto.DepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DepreciationResponse{
		Schedule: calculators.StraightLine(req.ToAssetParams()),
	})
}

// payroll godoc
// @Summary Employer cost
// @Description Loads a gross wage with the statutory employer on-cost percentages
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   position body dto.PayrollRequest true "Position parameters"
// @Success 200 {object} calculators.PayrollResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculators/payroll [post]
func (h *calculatorHandler) payroll(c *gin.Context) {
	var req dto.PayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, calculators.EmployerCost(req.ToPayrollParams()))
}

// incomeTax godoc
// @Summary Progressive income tax
// @Description Walks the bracket schedule over a yearly taxable base
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   base body dto.IncomeTaxRequest true "Taxable base and optional brackets"
// @Success 200 {object} dto.IncomeTaxResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculators/incometax [post]
func (h *calculatorHandler) incomeTax(c *gin.Context) {
	var req dto.IncomeTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	brackets := req.Brackets
	if len(brackets) == 0 {
		brackets = calculators.DefaultTaxBrackets
	}

	taxDue := calculators.TaxDue(req.TaxableBase, brackets)
	avgRate := decimal.Zero
	if req.TaxableBase.IsPositive() {
		avgRate = taxDue.Div(req.TaxableBase).Mul(decimal.NewFromInt(100)).Round(2)
	}

	c.JSON(http.StatusOK, dto.IncomeTaxResponse{
		TaxDue:             taxDue,
		AverageRatePercent: avgRate,
	})
}

// creditCapacity godoc
// @Summary Credit capacity
// @Description Derives free cash flow and the debt-service coverage ratio
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   figures body dto.CreditCapacityRequest true "Yearly figures"
// @Success 200 {object} calculators.CreditCapacityResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculators/creditcapacity [post]
func (h *calculatorHandler) creditCapacity(c *gin.Context) {
	var req dto.CreditCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, calculators.CreditCapacity(req.ToCreditCapacityParams()))
}

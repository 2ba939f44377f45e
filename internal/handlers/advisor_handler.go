package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/logger"
	"yemalin/internal/middleware"
	"yemalin/internal/scoring"
	"yemalin/internal/services"
)

// AdvisorHandler serves the allocation form and its results.
type AdvisorHandler struct {
	advisorService  services.AdvisorServicer
	universeService services.UniverseServicer
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService services.AdvisorServicer, universeService services.UniverseServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService, universeService: universeService}
}

// ProposalForm is the investor profile form. Percentages are whole numbers
// as typed by the investor.
type ProposalForm struct {
	RiskTolerance   float64 `form:"risk_tolerance" binding:"required,min=1,max=5"`
	Horizon         string  `form:"horizon" binding:"required,horizon"`
	Amount          float64 `form:"amount" binding:"required,gte=1000"`
	CashReservePct  float64 `form:"cash_reserve" binding:"min=0,max=50"`
	MinLiquidityPct float64 `form:"min_liquidity" binding:"min=0,max=100"`
	MaxAssets       int     `form:"max_assets" binding:"required,min=1,max=10"`
	Weighting       string  `form:"weighting" binding:"omitempty,weighting"`
}

var proposalLabels = map[string]string{
	"RiskTolerance":   "Risk tolerance",
	"Horizon":         "Investment horizon",
	"Amount":          "Amount to invest",
	"CashReservePct":  "Minimum cash reserve",
	"MinLiquidityPct": "Minimum asset liquidity",
	"MaxAssets":       "Maximum number of assets",
	"Weighting":       "Weighting",
}

// DefaultProposalForm returns the values the form opens with.
func DefaultProposalForm() ProposalForm {
	return ProposalForm{
		RiskTolerance:  3,
		Horizon:        string(scoring.HorizonMedium),
		Amount:         10000,
		CashReservePct: 10,
		MaxAssets:      6,
		Weighting:      string(scoring.WeightingProportional),
	}
}

// Request converts the form into a proposal request, percentages into
// fractions.
func (f ProposalForm) Request() services.ProposalRequest {
	return services.ProposalRequest{
		RiskTolerance: f.RiskTolerance,
		Horizon:       scoring.Horizon(f.Horizon),
		Amount:        f.Amount,
		CashReserve:   f.CashReservePct / 100,
		MinLiquidity:  f.MinLiquidityPct / 100,
		MaxAssets:     f.MaxAssets,
		Weighting:     scoring.Weighting(f.Weighting),
	}
}

type option struct {
	Value string
	Label string
}

var horizonOptions = []option{
	{Value: string(scoring.HorizonShort), Label: "Short term"},
	{Value: string(scoring.HorizonMedium), Label: "Medium term"},
	{Value: string(scoring.HorizonLong), Label: "Long term"},
}

// Home renders the empty form next to the universe table.
func (h *AdvisorHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, DefaultProposalForm(), nil, "")
}

// Optimize scores the universe for the submitted profile and renders the
// proposal. Invalid input re-renders the form with a 400.
func (h *AdvisorHandler) Optimize(c *gin.Context) {
	var form ProposalForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, form, nil, bindingMessage(err, proposalLabels))
		return
	}

	proposal, err := h.advisorService.Propose(c.Request.Context(), form.Request())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperrors.ErrInvalidInput) {
			h.render(c, http.StatusBadRequest, form, nil, appErr.Message)
			return
		}
		respondWithError(c, err)
		return
	}

	logger.Get().Debugw("allocation proposed",
		"request_id", middleware.RequestID(c),
		"risk_tolerance", form.RiskTolerance,
		"horizon", form.Horizon,
		"risk_aversion", proposal.Allocation.RiskAversion,
		"lines", len(proposal.Allocation.Lines),
		"unallocated", proposal.Allocation.Unallocated,
	)

	h.render(c, http.StatusOK, form, proposal, "")
}

func (h *AdvisorHandler) render(c *gin.Context, status int, form ProposalForm, proposal *services.Proposal, message string) {
	assets, err := h.universeService.AllAssets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(status, "index.html", gin.H{
		"Title":    "Allocation",
		"Form":     form,
		"Horizons": horizonOptions,
		"Universe": assets,
		"Proposal": proposal,
		"Error":    message,
	})
}

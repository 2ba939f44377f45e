package services

import (
	"context"

	"yemalin/internal/models"
	"yemalin/internal/pagination"
	"yemalin/internal/scoring"
	"yemalin/internal/universe"
)

// UniverseServicer defines the contract for the investable-universe catalogue.
type UniverseServicer interface {
	ListAssets(page pagination.PageRequest, class models.AssetClass) (*pagination.PageResponse[models.Asset], error)
	AllAssets(ctx context.Context) ([]models.Asset, error)
	Seed(entries []universe.Entry) (int, error)
	Invalidate()
}

// ProposalRequest is the investor input for one allocation proposal.
type ProposalRequest struct {
	RiskTolerance float64
	Horizon       scoring.Horizon
	Amount        float64
	CashReserve   float64 // fraction, 0 to 0.5
	MinLiquidity  float64 // fraction, 0 to 1
	MaxAssets     int
	Weighting     scoring.Weighting
}

// Constraints converts the request into scoring constraints.
func (r ProposalRequest) Constraints() scoring.Constraints {
	return scoring.Constraints{
		RiskTolerance: r.RiskTolerance,
		Horizon:       r.Horizon,
		MaxAssets:     r.MaxAssets,
		MinLiquidity:  r.MinLiquidity,
		CashReserve:   r.CashReserve,
		Weighting:     r.Weighting,
		Amount:        r.Amount,
	}
}

// Proposal is everything the result page renders.
type Proposal struct {
	Request    ProposalRequest
	Allocation scoring.Allocation
	Frontier   []scoring.FrontierPoint
}

// AdvisorServicer defines the contract for producing allocation proposals.
type AdvisorServicer interface {
	Propose(ctx context.Context, req ProposalRequest) (*Proposal, error)
}

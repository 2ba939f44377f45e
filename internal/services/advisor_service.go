package services

import (
	"context"
	"errors"
	"strings"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/models"
	"yemalin/internal/scoring"
)

// advisorService turns investor input into an allocation proposal using the
// demo scoring model.
type advisorService struct {
	universe       UniverseServicer
	frontierPoints int
}

// NewAdvisorService creates a new AdvisorServicer. frontierPoints below 2
// selects the default sample count.
func NewAdvisorService(universe UniverseServicer, frontierPoints int) AdvisorServicer {
	if frontierPoints < 2 {
		frontierPoints = scoring.DefaultFrontierPoints
	}
	return &advisorService{universe: universe, frontierPoints: frontierPoints}
}

// Propose scores the current universe under the request's constraints and
// traces the demo frontier for the same selection rules.
func (s *advisorService) Propose(ctx context.Context, req ProposalRequest) (*Proposal, error) {
	if req.Weighting == "" {
		req.Weighting = scoring.WeightingProportional
	}

	assets, err := s.universe.AllAssets(ctx)
	if err != nil {
		return nil, err
	}
	candidates := ToScoringAssets(assets)
	constraints := req.Constraints()

	alloc, err := scoring.Allocate(candidates, constraints)
	if err != nil {
		return nil, translateScoringError(err)
	}

	frontier, err := scoring.Frontier(candidates, constraints, s.frontierPoints)
	if err != nil {
		return nil, translateScoringError(err)
	}

	return &Proposal{Request: req, Allocation: alloc, Frontier: frontier}, nil
}

// ToScoringAssets converts catalogue rows into scoring candidates.
func ToScoringAssets(assets []models.Asset) []scoring.Asset {
	out := make([]scoring.Asset, len(assets))
	for i, a := range assets {
		out[i] = scoring.Asset{
			Ticker:         a.Ticker,
			Name:           a.Name,
			Class:          string(a.Class),
			ExpectedReturn: a.ExpectedReturn,
			Volatility:     a.Volatility,
			Liquidity:      a.Liquidity,
		}
	}
	return out
}

// translateScoringError maps scoring validation failures to INVALID_INPUT
// with a message fit for the investor.
func translateScoringError(err error) error {
	if errors.Is(err, scoring.ErrInvalidInput) {
		msg := strings.TrimPrefix(err.Error(), scoring.ErrInvalidInput.Error()+": ")
		if msg != "" {
			msg = strings.ToUpper(msg[:1]) + msg[1:]
		}
		return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

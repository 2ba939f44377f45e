package services

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/logger"
	"yemalin/internal/models"
	"yemalin/internal/pagination"
	"yemalin/internal/universe"
)

// universeService serves the asset catalogue. The full universe is cached
// after the first read; concurrent misses share one query.
type universeService struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached []models.Asset
	group  singleflight.Group
}

// NewUniverseService creates a new UniverseServicer.
func NewUniverseService(db *gorm.DB) UniverseServicer {
	return &universeService{db: db}
}

// ListAssets returns a page of the universe ordered by class then ticker,
// optionally restricted to one class.
func (s *universeService) ListAssets(page pagination.PageRequest, class models.AssetClass) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	base := s.db.Model(&models.Asset{})
	if class != "" {
		if !class.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown asset class")
		}
		base = base.Where("class = ?", class)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Order("class ASC, ticker ASC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// AllAssets returns the whole universe in insertion order. Callers must not
// modify the returned slice.
func (s *universeService) AllAssets(ctx context.Context) ([]models.Asset, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.group.Do("all", func() (interface{}, error) {
		var assets []models.Asset
		if err := s.db.WithContext(ctx).Order("id ASC").Find(&assets).Error; err != nil {
			return nil, err
		}
		if assets == nil {
			assets = []models.Asset{}
		}
		s.mu.Lock()
		s.cached = assets
		s.mu.Unlock()
		return assets, nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return v.([]models.Asset), nil
}

// Seed inserts the given entries when the catalogue is empty and returns the
// number of assets created. A populated catalogue is left untouched.
func (s *universeService) Seed(entries []universe.Entry) (int, error) {
	var existing int64
	if err := s.db.Model(&models.Asset{}).Count(&existing).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		logger.Get().Infow("universe already seeded", "assets", existing)
		return 0, nil
	}

	assets := make([]models.Asset, 0, len(entries))
	for _, e := range entries {
		assets = append(assets, models.Asset{
			Ticker:         e.Ticker,
			Name:           e.Name,
			Class:          models.AssetClass(e.Class),
			ExpectedReturn: e.ExpectedReturn,
			Volatility:     e.Volatility,
			Liquidity:      e.Liquidity,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range assets {
			if err := tx.Create(&assets[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, apperrors.Wrap(apperrors.ErrDuplicateAsset, err)
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.Invalidate()
	logger.Get().Infow("universe seeded", "assets", len(assets))
	return len(assets), nil
}

// Invalidate drops the cached universe.
func (s *universeService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}

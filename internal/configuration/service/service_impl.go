package service

import (
	"context"
	"time"

	"github.com/facturable/facturable/internal/configuration/domain"
	"github.com/facturable/facturable/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo repository.Repository[domain.Setting]
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("configuration.service"),
		repo: repository.ProvideStore[domain.Setting](p.DB),
	}
}

func (s *Service) Get(ctx context.Context) (map[string]any, error) {
	rows, err := s.repo.Find(ctx, &domain.Setting{})
	if err != nil {
		return nil, err
	}

	settings := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, *row)
	}
	return domain.ToRecord(settings), nil
}

// Replace swaps the whole configuration set for the supplied map.
func (s *Service) Replace(ctx context.Context, rec map[string]any) (map[string]any, error) {
	settings := domain.FromRecord(rec)
	now := time.Now().UTC()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Setting{}).Error; err != nil {
			return err
		}
		for i := range settings {
			settings[i].UpdatedAt = now
		}
		if len(settings) == 0 {
			return nil
		}
		return tx.Create(&settings).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("configuration replaced", zap.Int("settings", len(settings)))
	return domain.ToRecord(settings), nil
}

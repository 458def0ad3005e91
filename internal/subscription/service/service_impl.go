package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/facturable/facturable/internal/subscription/domain"
	"github.com/facturable/facturable/pkg/db/option"
	"github.com/facturable/facturable/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  repository.Repository[domain.Subscription]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("subscription.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.Subscription](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.Record) (*domain.Subscription, error) {
	sub := domain.FromRecord(rec)
	sub.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.repo.Create(ctx, &sub); err != nil {
		return nil, err
	}

	s.log.Info("subscription created", zap.Int64("subscription_id", sub.ID))
	return &sub, nil
}

func (s *Service) Update(ctx context.Context, id int64, rec *domain.Record) (*domain.Subscription, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindOne(ctx, &domain.Subscription{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	sub := domain.FromRecord(rec)
	sub.ID = id
	sub.CreatedAt = existing.CreatedAt
	sub.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Subscription, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	sub, err := s.repo.FindOne(ctx, &domain.Subscription{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, active *bool) ([]*domain.Subscription, error) {
	opts := []option.QueryOption{option.WithOrder("name")}
	if active != nil {
		// a struct condition drops active=false, so filter explicitly
		opts = append(opts, option.WithWhere("active = ?", *active))
	}
	return s.repo.Find(ctx, &domain.Subscription{}, opts...)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/facturable/facturable/internal/entitysubscription/domain"
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
	repo  repository.Repository[domain.EntitySubscription]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("entitysubscription.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.EntitySubscription](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.Record) (*domain.EntitySubscription, error) {
	link := domain.FromRecord(rec)
	link.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	link.CreatedAt = now
	link.UpdatedAt = now

	if err := s.repo.Create(ctx, &link); err != nil {
		return nil, err
	}

	s.log.Info("entity subscription created",
		zap.Int64("entity_subscription_id", link.ID),
	)
	return &link, nil
}

func (s *Service) Update(ctx context.Context, id int64, rec *domain.Record) (*domain.EntitySubscription, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindOne(ctx, &domain.EntitySubscription{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	link := domain.FromRecord(rec)
	link.ID = id
	link.CreatedAt = existing.CreatedAt
	link.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.EntitySubscription, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	link, err := s.repo.FindOne(ctx, &domain.EntitySubscription{ID: id})
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrNotFound
	}
	return link, nil
}

func (s *Service) ListByEntity(ctx context.Context, entityID int64) ([]*domain.EntitySubscription, error) {
	filter := domain.EntitySubscription{}
	if entityID > 0 {
		filter.EntityID = &entityID
	}
	return s.repo.Find(ctx, &filter, option.WithOrder("starts_at"))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

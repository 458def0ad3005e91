package service

import (
	"context"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/facturable/facturable/internal/entity/domain"
	"github.com/facturable/facturable/pkg/db/option"
	"github.com/facturable/facturable/pkg/db/pagination"
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
	repo  repository.Repository[domain.Entity]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("entity.service"),
		genID: p.GenID,
		repo:  repository.ProvideStore[domain.Entity](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.Record) (*domain.Entity, error) {
	entity := domain.FromRecord(rec)
	entity.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	if err := s.repo.Create(ctx, &entity); err != nil {
		return nil, err
	}

	s.log.Info("entity created", zap.Int64("entity_id", entity.ID))
	return &entity, nil
}

func (s *Service) Update(ctx context.Context, id int64, rec *domain.Record) (*domain.Entity, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindOne(ctx, &domain.Entity{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	entity := domain.FromRecord(rec)
	entity.ID = id
	entity.CreatedAt = existing.CreatedAt
	entity.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Entity, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	entity, err := s.repo.FindOne(ctx, &domain.Entity{ID: id})
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, domain.ErrNotFound
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	filter := domain.Entity{
		Name: req.Name,
		CRN:  req.CRN,
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	var afterID int64
	if req.PageToken != "" {
		cursor, err := pagination.DecodeCursor(req.PageToken)
		if err == nil && cursor.ID != "" {
			afterID, _ = strconv.ParseInt(cursor.ID, 10, 64)
		}
	}

	opts := []option.QueryOption{
		option.WithAfterID(afterID),
		option.WithOrder("id"),
		option.WithLimit(pageSize + 1),
	}
	if req.Active != nil {
		// a struct condition drops active=false, so filter explicitly
		opts = append(opts, option.WithWhere("active = ?", *req.Active))
	}

	rows, err := s.repo.Find(ctx, &filter, opts...)
	if err != nil {
		return nil, err
	}

	rows, pageInfo := pagination.BuildCursorPageInfo(rows, pageSize, func(e *domain.Entity) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(e.ID, 10)})
		return token
	})

	return &domain.ListResponse{Entities: rows, PageInfo: pageInfo}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

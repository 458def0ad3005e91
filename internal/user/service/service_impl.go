package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/facturable/facturable/internal/user/domain"
	"github.com/facturable/facturable/pkg/db"
	"github.com/facturable/facturable/pkg/db/option"
	"github.com/facturable/facturable/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
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

	userRepo repository.Repository[domain.User]
	roleRepo repository.Repository[domain.Role]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("user.service"),
		genID: p.GenID,

		userRepo: repository.ProvideStore[domain.User](p.DB),
		roleRepo: repository.ProvideStore[domain.Role](p.DB),
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.Record) (*domain.User, error) {
	user := domain.FromRecord(rec)
	user.ID = s.genID.Generate().Int64()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	user.PasswordConfirmation = ""

	now := time.Now().UTC()
	user.CreatedAt = &now
	user.UpdatedAt = &now

	if err := s.userRepo.Create(ctx, &user); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	s.log.Info("user created", zap.Int64("user_id", user.ID))
	return &user, nil
}

func (s *Service) Update(ctx context.Context, id int64, rec *domain.Record) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.userRepo.FindOne(ctx, &domain.User{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	user := domain.FromRecord(rec)
	user.ID = id
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = existing.CreatedAt

	now := time.Now().UTC()
	user.UpdatedAt = &now

	// An empty password on edit keeps the stored credentials.
	if user.Password == "" {
		user.PasswordHash = existing.PasswordHash
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Password = ""
	user.PasswordConfirmation = ""

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	user, err := s.userRepo.FindOne(ctx, &domain.User{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.Find(ctx, &domain.User{}, option.WithOrder("name"))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *Service) CreateRole(ctx context.Context, rec *domain.RoleRecord) (*domain.Role, error) {
	role := domain.RoleFromRecord(rec)
	role.ID = s.genID.Generate().Int64()

	now := time.Now().UTC()
	role.CreatedAt = now
	role.UpdatedAt = now

	if err := s.roleRepo.Create(ctx, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, rec *domain.RoleRecord) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.roleRepo.FindOne(ctx, &domain.Role{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrRoleNotFound
	}

	role := domain.RoleFromRecord(rec)
	role.ID = id
	role.CreatedAt = existing.CreatedAt
	role.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Service) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.roleRepo.Find(ctx, &domain.Role{}, option.WithOrder("name"))
}

func (s *Service) DeleteRole(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	return s.roleRepo.Delete(ctx, id)
}

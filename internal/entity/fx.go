package entity

import (
	"github.com/facturable/facturable/internal/entity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("entity.service",
	fx.Provide(service.New),
)

package configuration

import (
	"github.com/facturable/facturable/internal/configuration/service"
	"go.uber.org/fx"
)

var Module = fx.Module("configuration.service",
	fx.Provide(service.New),
)

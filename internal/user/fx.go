package user

import (
	"github.com/facturable/facturable/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(service.New),
)

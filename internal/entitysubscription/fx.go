package entitysubscription

import (
	"github.com/facturable/facturable/internal/entitysubscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("entitysubscription.service",
	fx.Provide(service.New),
)

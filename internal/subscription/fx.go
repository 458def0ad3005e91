package subscription

import (
	"github.com/facturable/facturable/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(service.New),
)

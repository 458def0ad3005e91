package invoice

import (
	"github.com/facturable/facturable/internal/catalog"
	"github.com/facturable/facturable/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	catalog.Module,
	fx.Provide(service.New),
)

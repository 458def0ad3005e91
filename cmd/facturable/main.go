package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/facturable/facturable/internal/seed"
	"github.com/facturable/facturable/internal/server"
	"github.com/facturable/facturable/pkg/db"
	"github.com/facturable/facturable/pkg/log"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		log.Module,
		db.Module,
		fx.Provide(func() (*snowflake.Node, error) {
			return snowflake.NewNode(1)
		}),
		seed.Module,
		server.Module,
	).Run()
}

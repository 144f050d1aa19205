package main

import (
	"gamehub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DistributorModel{},
		model.DistributedGameModel{},
		model.PlayerModel{},
		model.OwnedGameModel{},
		model.ReviewModel{},
		model.ReviewReactionModel{},
		model.PublisherModel{},
		model.GameModel{},
		model.PatchModel{},
		model.ReviewMirrorModel{},
		model.CrashReportModel{},
		model.OutboxMessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

package main

import (
	"tempo/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Daily activities and timelines rely on upserts, row locks and joins that stay on plain gorm.
func main() {
	models := []any{
		model.DeviceModel{},
		model.AppModel{},
		model.AppUsageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

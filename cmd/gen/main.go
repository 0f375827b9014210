package main

import (
	"neosafe/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SafeBoxModel{},
		model.TransferRequestModel{},
		model.SensorReadingModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

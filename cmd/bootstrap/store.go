package bootstrap

import (
	"booking-calendar/internal/infra/filestore"
	"booking-calendar/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewFileStore,
	),
)

func NewFileStore(cfg config.Config) *filestore.Store {
	return filestore.New(cfg.Store.File)
}

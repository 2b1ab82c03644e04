//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/allowdns/internal/adapter/repository"
	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	"github.com/eslsoft/allowdns/internal/infrastructure/logging"
	"github.com/eslsoft/allowdns/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var repositorySet = wire.NewSet(
	repository.NewConfigAllowlistRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewAllowlistUsecase,
	usecase.NewDNSSetupUsecase,
)

var loggingSet = wire.NewSet(
	logging.NewLogger,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, error) {
	wire.Build(
		configSet,
		loggingSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil
}

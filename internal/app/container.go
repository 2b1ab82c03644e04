package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	"github.com/eslsoft/allowdns/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Allowlist usecase.AllowlistUsecase
	DNSSetup  usecase.DNSSetupUsecase
}

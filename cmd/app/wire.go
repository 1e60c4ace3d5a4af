//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/shiji-energy/internal/bootstrap"
	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/auth"
	"github.com/yanqian/shiji-energy/internal/domain/energy"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
	"github.com/yanqian/shiji-energy/internal/infra/config"
	httpiface "github.com/yanqian/shiji-energy/internal/interface/http"
	"github.com/yanqian/shiji-energy/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideEnergyConfig,
		provideLocation,
		provideOracle,
		providePostgresPool,
		provideUserRepository,
		provideProfileRepository,
		provideEnergyCache,
		provideProfileSource,
		auth.NewService,
		profile.NewService,
		almanac.NewService,
		energy.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

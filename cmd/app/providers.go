package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/auth"
	"github.com/yanqian/shiji-energy/internal/domain/energy"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
	"github.com/yanqian/shiji-energy/internal/infra/calendar/lunargo"
	"github.com/yanqian/shiji-energy/internal/infra/config"
	"github.com/yanqian/shiji-energy/internal/infra/energycache"
	"github.com/yanqian/shiji-energy/internal/infra/profilerepo"
	"github.com/yanqian/shiji-energy/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.Secret,
		TokenTTL:        cfg.Auth.TokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideEnergyConfig(cfg *config.Config) energy.Config {
	return energy.Config{
		LegacyScoring: cfg.Energy.LegacyScoring,
		CacheTTL:      cfg.Energy.CacheTTL,
	}
}

// provideLocation resolves the configured calendar timezone. Date parsing and
// pillar conversions all run in this location.
func provideLocation(cfg *config.Config, logger *slog.Logger) *time.Location {
	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		logger.Error("invalid calendar timezone, falling back to UTC", "timezone", cfg.Calendar.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func provideOracle(cfg *config.Config, loc *time.Location, logger *slog.Logger) almanac.Oracle {
	return lunargo.NewClient(lunargo.Config{
		Location:         loc,
		DefaultLongitude: cfg.Calendar.DefaultLongitude,
	}, logger)
}

// providePostgresPool returns a ready pool, or nil when Postgres is not
// configured or unreachable. Repositories fall back to memory on nil.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideUserRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(pool *pgxpool.Pool) profile.Repository {
	if pool == nil {
		return profilerepo.NewMemoryRepository()
	}
	return profilerepo.NewPostgresRepository(pool)
}

func provideEnergyCache(cfg *config.Config, logger *slog.Logger) energy.ProfileCache {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return energycache.NewMemoryStore(cfg.Energy.CacheTTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return energycache.NewMemoryStore(cfg.Energy.CacheTTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
			client.Close()
		} else {
			logger.Info("valkey day-profile cache enabled", "addr", cfg.Valkey.Addr)
			return energycache.NewValkeyStore(client, cfg.Valkey.Prefix, cfg.Energy.CacheTTL)
		}
	}
	return energycache.NewMemoryStore(cfg.Energy.CacheTTL)
}

func provideProfileSource(svc profile.Service) energy.ProfileSource {
	return svc
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/asset-balance-api/internal/application/auth"
	"github.com/jhoicas/asset-balance-api/internal/application/balance"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
	"github.com/jhoicas/asset-balance-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/asset-balance-api/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-balance-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/asset-balance-api/internal/interfaces/http"
	"github.com/jhoicas/asset-balance-api/pkg/config"
	"github.com/jhoicas/asset-balance-api/pkg/logger"
)

// repos agrupa los puertos de lectura de la fuente elegida.
type repos struct {
	movements repository.AssetMovementRepository
	openings  repository.OpeningBalanceRepository
	bases     repository.BaseRepository
	assets    repository.AssetRepository
	transfers repository.TransferRepository
	users     repository.UserRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("configuración inválida: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ledger_source", cfg.Ledger.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r, err := openRepos(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("ledger_source", cfg.Ledger.Source).Msg("abrir fuente del libro")
	}
	defer r.close()

	sessionUC := auth.NewSessionUseCase(r.users, auth.AllowAll{}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	// PDF: reporte imprimible del balance
	reportGenerator := infrapdf.NewMarotoBalanceReport(language.English)
	balanceUC := balance.NewUseCase(r.movements, r.openings, r.bases, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	// el access log envuelve a recover para registrar también las peticiones que entran en pánico
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Asset Balance API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "ledger": cfg.Ledger.Source})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:  sessionUC,
		BalanceUC:  balanceUC,
		BaseUC:     usecase.NewBaseUseCase(r.bases),
		AssetUC:    usecase.NewAssetUseCase(r.assets),
		TransferUC: usecase.NewTransferUseCase(r.transfers),
		MovementUC: usecase.NewMovementUseCase(r.movements),
		Defaults:   httpRouter.QueryDefaults{Start: cfg.Ledger.DefaultStart},
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openRepos construye los repositorios según LEDGER_SOURCE.
func openRepos(ctx context.Context, cfg *config.Config) (*repos, error) {
	if cfg.Ledger.Source == config.LedgerSourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &repos{
			movements: postgres.NewAssetMovementRepository(pool),
			openings:  postgres.NewOpeningBalanceRepository(pool, cfg.Ledger.DefaultOpening),
			bases:     postgres.NewBaseRepository(pool),
			assets:    postgres.NewAssetRepository(pool),
			transfers: postgres.NewTransferRepository(pool),
			users:     postgres.NewOperatorRepository(pool),
			close:     pool.Close,
		}, nil
	}

	f, err := memory.LoadFixture(cfg.Ledger.SeedPath)
	if err != nil {
		return nil, err
	}
	return &repos{
		movements: memory.NewAssetMovementRepository(f),
		openings:  memory.NewOpeningBalanceRepository(f, cfg.Ledger.DefaultOpening),
		bases:     memory.NewBaseRepository(f),
		assets:    memory.NewAssetRepository(f),
		transfers: memory.NewTransferRepository(f),
		users:     memory.NewUserRepository(f),
		close:     func() {},
	}, nil
}

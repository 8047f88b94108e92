package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/cache"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/mail"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driven/posapi"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
	"github.com/diillson/pos-sales-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository(), buildServices)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices inicializa os repositórios e os casos de uso para a configuração carregada.
func buildServices(cfg *types.Config, out types.ConsoleInterface) (*cli.Services, error) {
	txRepo := posapi.NewPOSRepository(cfg.API)
	exportRepo := export.NewExportRepository(cfg.BrandName)

	cacheRepo, err := cache.NewCacheRepository(cfg.Cache)
	if err != nil {
		return nil, err
	}

	mailRepo, err := mail.NewMailRepository(cfg.Mail)
	if err != nil {
		return nil, err
	}

	services := &cli.Services{
		Dashboard: usecase.NewDashboardUseCase(txRepo, exportRepo, cacheRepo, out, cfg),
		Report:    usecase.NewDailyReportUseCase(txRepo, exportRepo, mailRepo, out, cfg),
	}
	if closer, ok := cacheRepo.(io.Closer); ok {
		services.Close = closer.Close
	}
	return services, nil
}

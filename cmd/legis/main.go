package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/legis-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/legis-cli/internal/adapters/driven/directory"
	"github.com/custodia-labs/legis-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/legis-cli/internal/connectors/legiscan"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/legis-cli/internal/core/services"
	legiscannormaliser "github.com/custodia-labs/legis-cli/internal/normalisers/legiscan"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	committees, err := directory.Load(settings.Committees.File)
	if err != nil {
		return fmt.Errorf("loading committees: %w", err)
	}

	cli.SetVersion(version)
	cli.SetSettingsService(settingsService)
	cli.SetTestimonyService(services.NewTestimonyService(committees))

	// The client needs the credential; build it only when a command
	// talks to the API.
	cli.SetBillService(func() (driving.BillService, error) {
		client, err := legiscan.NewClient(legiscan.ConfigFromSettings(settings.API))
		if err != nil {
			return nil, err
		}
		resolver := services.NewResolver(client, settings.Legislature.SessionPolicy)
		return services.NewBillService(resolver, legiscannormaliser.New()), nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}

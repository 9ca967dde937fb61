// Package cli provides the legis command line interface.
package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
	"github.com/custodia-labs/legis-cli/internal/core/ports/driving"
	"github.com/custodia-labs/legis-cli/internal/logger"
)

// version is reported by the version command; main sets it.
var version = "dev"

var (
	verbose      bool
	stateFlag    string
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	billsFactory func() (driving.BillService, error)

	settingsService  driving.SettingsService
	testimonyService driving.TestimonyService
)

var rootCmd = &cobra.Command{
	Use:   "legis",
	Short: "Browse state legislation",
	Long: `legis retrieves bills from the LegiScan API and presents them
for reading, searching and drafting committee testimony.

Run without a command in a terminal to open the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal() {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and timings to stderr")
	rootCmd.PersistentFlags().StringVarP(&stateFlag, "state", "s", "", "jurisdiction state code (default from settings)")
}

// ExecuteContext runs the root command. ctx is cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBillService registers how the bill service is built. The factory
// runs when a command first needs the service, so commands that do not
// talk to the API work without a credential.
func SetBillService(factory func() (driving.BillService, error)) {
	billsFactory = factory
}

// SetSettingsService sets the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetTestimonyService sets the testimony service.
func SetTestimonyService(s driving.TestimonyService) {
	testimonyService = s
}

func billService() (driving.BillService, error) {
	if billsFactory == nil {
		return nil, errors.New("bill service not configured")
	}
	svc, err := billsFactory()
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) {
			return nil, errors.New("no API key configured: set LEGISCAN_API_KEY or run 'legis settings set api.key <key>'")
		}
		return nil, err
	}
	return svc, nil
}

// jurisdiction returns the --state flag, else the configured default.
func jurisdiction() string {
	if s := strings.TrimSpace(stateFlag); s != "" {
		return strings.ToUpper(s)
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil && settings.Legislature.Jurisdiction != "" {
			return settings.Legislature.Jurisdiction
		}
	}
	return domain.DefaultJurisdiction
}

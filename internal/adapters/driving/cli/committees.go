package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

var committeesCmd = &cobra.Command{
	Use:   "committees [name]",
	Short: "List committees that accept testimony by email",
	Long: `Without arguments, lists every committee with a configured recipient.
With a name, prints that committee's address.

The built-in list can be extended or overridden with a TOML file set by
'legis settings set committees.file <path>'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommittees,
}

func init() {
	rootCmd.AddCommand(committeesCmd)
}

func runCommittees(cmd *cobra.Command, args []string) error {
	if testimonyService == nil {
		return errors.New("testimony service not configured")
	}

	if len(args) == 1 {
		addr, ok := testimonyService.Recipient(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownCommittee, args[0])
		}
		cmd.Println(addr)
		return nil
	}

	names := testimonyService.Committees()
	if len(names) == 0 {
		cmd.Println("No committees configured.")
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		addr, _ := testimonyService.Recipient(name)
		rows = append(rows, []string{name, addr})
	}
	cmd.Println(renderTable([]string{"Committee", "Recipient"}, rows))
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legis-cli/internal/core/domain"
)

type testimonyFlags struct {
	billNumber string
	billID     int
	firstName  string
	lastName   string
	email      string
	city       string
	org        string
	committee  string
	position   string
	body       string
	bodyFile   string
	html       string
	mailto     bool
}

var testimonyOpts testimonyFlags

var testimonyCmd = &cobra.Command{
	Use:   "testimony",
	Short: "Draft written testimony for a committee hearing",
	Long: `Drafts written testimony on a bill. The plain text is printed;
--html also writes a printable page and --mailto prints a mailto link
addressed to the committee.

With --bill-id the bill number and committee are filled in from the bill.
The testimony body is read from --body, --body-file, or stdin with
--body-file -.`,
	Args: cobra.NoArgs,
	RunE: runTestimony,
}

func init() {
	f := testimonyCmd.Flags()
	f.StringVar(&testimonyOpts.billNumber, "bill", "", "bill number, e.g. HB2001")
	f.IntVar(&testimonyOpts.billID, "bill-id", 0, "fetch bill number and committee from this bill")
	f.StringVar(&testimonyOpts.firstName, "first-name", "", "your first name")
	f.StringVar(&testimonyOpts.lastName, "last-name", "", "your last name")
	f.StringVar(&testimonyOpts.email, "email", "", "your email address")
	f.StringVar(&testimonyOpts.city, "city", "", "your city")
	f.StringVar(&testimonyOpts.org, "org", "", "organisation you represent")
	f.StringVar(&testimonyOpts.committee, "committee", "", "committee hearing the bill")
	f.StringVar(&testimonyOpts.position, "position", string(domain.PositionSupport), "support, neutral or oppose")
	f.StringVar(&testimonyOpts.body, "body", "", "testimony text")
	f.StringVar(&testimonyOpts.bodyFile, "body-file", "", "read testimony text from file ('-' for stdin)")
	f.StringVar(&testimonyOpts.html, "html", "", "also write a printable HTML page to this path")
	f.BoolVar(&testimonyOpts.mailto, "mailto", false, "print a mailto link to the committee")

	rootCmd.AddCommand(testimonyCmd)
}

func runTestimony(cmd *cobra.Command, _ []string) error {
	if testimonyService == nil {
		return errors.New("testimony service not configured")
	}

	body, err := testimonyBody(cmd)
	if err != nil {
		return err
	}

	t := domain.Testimony{
		FirstName:    testimonyOpts.firstName,
		LastName:     testimonyOpts.lastName,
		Email:        testimonyOpts.email,
		City:         testimonyOpts.city,
		Organization: testimonyOpts.org,
		BillNumber:   testimonyOpts.billNumber,
		Committee:    testimonyOpts.committee,
		Position:     domain.Position(strings.ToLower(strings.TrimSpace(testimonyOpts.position))),
		Body:         body,
	}

	if testimonyOpts.billID != 0 {
		svc, err := billService()
		if err != nil {
			return err
		}
		bill, err := svc.Bill(cmd.Context(), testimonyOpts.billID)
		if err != nil {
			return fmt.Errorf("failed to get bill: %w", err)
		}
		testimonyService.Prefill(&t, bill)
	}

	doc, err := testimonyService.Compose(t, testimonyOpts.mailto)
	if err != nil {
		return err
	}

	cmd.Println(doc.Text)

	if testimonyOpts.html != "" {
		if err := os.WriteFile(testimonyOpts.html, []byte(doc.HTML), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", testimonyOpts.html, err)
		}
		cmd.PrintErrf("Wrote %s\n", testimonyOpts.html)
	}

	if testimonyOpts.mailto {
		cmd.Println()
		cmd.Printf("To: %s\n", doc.Recipient)
		cmd.Println(doc.Mailto)
	}
	return nil
}

func testimonyBody(cmd *cobra.Command) (string, error) {
	switch testimonyOpts.bodyFile {
	case "":
		return testimonyOpts.body, nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(testimonyOpts.bodyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", testimonyOpts.bodyFile, err)
		}
		return string(data), nil
	}
}

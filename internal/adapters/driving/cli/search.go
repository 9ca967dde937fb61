package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legis-cli/internal/normalisers/html"
)

var (
	searchYear int
	searchJSON bool

	textOutput string
	textPlain  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search of bills",
	Long: `Searches bills of the jurisdiction. By default the current session
is searched; --year searches a specific year instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var textCmd = &cobra.Command{
	Use:   "text <doc-id>",
	Short: "Download a bill text",
	Long: `Downloads one bill document. Document ids are listed under "Texts"
by 'legis bill'. Without -o the content is written to stdout.
--plain strips markup from HTML texts.`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	searchCmd.Flags().IntVar(&searchYear, "year", 0, "restrict to a year")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")

	textCmd.Flags().StringVarP(&textOutput, "output", "o", "", "write to file, or into directory")
	textCmd.Flags().BoolVar(&textPlain, "plain", false, "strip markup from HTML texts")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(textCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := billService()
	if err != nil {
		return err
	}

	results, err := svc.Search(cmd.Context(), jurisdiction(), args[0], searchYear)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, results)
	}

	if len(results.Hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	rows := make([][]string, 0, len(results.Hits))
	for _, h := range results.Hits {
		rows = append(rows, []string{
			strconv.Itoa(h.Relevance),
			h.Number,
			strconv.Itoa(h.BillID),
			h.LastActionDate,
			truncate(h.Title, 60),
		})
	}
	cmd.Println(renderTable([]string{"Score", "Bill", "ID", "Last action", "Title"}, rows))
	cmd.Printf("%d results (page %d of %d)\n", results.Summary.Count, results.Summary.Page, results.Summary.PageTotal)
	return nil
}

func runText(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs("document", args)
	if err != nil {
		return err
	}

	svc, err := billService()
	if err != nil {
		return err
	}

	text, err := svc.Text(cmd.Context(), ids[0])
	if err != nil {
		return fmt.Errorf("failed to get text: %w", err)
	}

	if textPlain {
		if !html.Supports(text.MIME) {
			return fmt.Errorf("--plain needs an HTML text, document %d is %s", text.DocID, text.MIME)
		}
		plain := *text
		plain.Content = []byte(html.PlainText(text.Content) + "\n")
		plain.MIME = "text/plain"
		text = &plain
	}

	if textOutput == "" {
		_, err := cmd.OutOrStdout().Write(text.Content)
		return err
	}

	path := textOutput
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, fmt.Sprintf("doc_%d%s", text.DocID, text.Extension()))
	}
	if err := os.WriteFile(path, text.Content, 0o644); err != nil { //nolint:gosec // bill texts are public documents
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmd.Printf("Wrote %s (%d bytes, %s)\n", path, len(text.Content), text.MIME)
	return nil
}

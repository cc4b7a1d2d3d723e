package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/f3rmion/brandwatch/internal/brand"
	"github.com/f3rmion/brandwatch/internal/source"
	"github.com/f3rmion/brandwatch/internal/tui/chart"
	"github.com/f3rmion/brandwatch/internal/tui/views"
	"github.com/spf13/cobra"
)

// errEmptyBrand is returned when the brand argument is blank.
var errEmptyBrand = errors.New("brand name must not be empty")

var lookupCmd = &cobra.Command{
	Use:   "lookup <brand>",
	Short: "Look up sentiment counts for a brand",
	Long: `Look up a brand and print its:
  - Total mentions
  - Positive, negative and neutral counts
  - A sentiment bar chart

Example:
  brandwatch lookup Zomato
  brandwatch lookup "Acme Corp" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

var (
	lookupJSON    bool
	lookupNoDelay bool
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the result as JSON")
	lookupCmd.Flags().BoolVar(&lookupNoDelay, "no-delay", false, "skip the artificial search delay")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	delay := cfg.Delay
	if lookupNoDelay {
		delay = 0
	}

	result, err := lookup(cmd.Context(), fetcher, strings.Join(args, " "), delay)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), result, lookupJSON)
}

// lookup trims brandName, waits for delay and fetches the result.
func lookup(ctx context.Context, fetcher source.Fetcher, brandName string, delay time.Duration) (brand.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	brandName = strings.TrimSpace(brandName)
	if brandName == "" {
		return brand.Result{}, errEmptyBrand
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return brand.Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	result, err := fetcher.Fetch(ctx, brandName)
	if err != nil {
		return brand.Result{}, fmt.Errorf("looking up %s: %w", brandName, err)
	}
	return result, nil
}

func printResult(w io.Writer, r brand.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if _, err := fmt.Fprint(w, r.Summary()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", chart.NewHBar().Render(views.ChartData(r), 50))
	return err
}

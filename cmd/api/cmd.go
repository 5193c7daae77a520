package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsh2dsh/gurufocus/client"
	"github.com/dsh2dsh/gurufocus/cmd/internal/common"
)

var (
	dataDir     string
	unadjusted  bool
	picksSince  string
	picksPage   int
	tradesPage  int
	assetType   string
	withSymbols bool

	Cmd = cobra.Command{
		Use:   "api",
		Short: "Fetch documents from GuruFocus API",
		Long: `All sub-commands require GURUFOCUS_TOKEN environment variable set:

  GURUFOCUS_TOKEN="your-token"

GURUFOCUS_URL overrides base URL of the API. Fetched document is written to
stdout as indented JSON.`,
	}

	dumpCmd = cobra.Command{
		Use:   "dump KIND SYMBOL...",
		Short: "Fetch document of every symbol and save it into datadir/KIND/",
		Example: `
  - Save financials of two symbols into ./financials/:

    $ gurufocus api dump financials NYSE:KO NAS:AAPL

  - Save dividend history into /tmp/dividends/:

    $ gurufocus api dump -d /tmp dividends NYSE:KO`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: dumpKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.NewClient()
			if err != nil {
				return err //nolint:wrapcheck // already has context
			}
			fetch, err := kindFetcher(c, args[0])
			if err != nil {
				return err
			}
			d := NewDump(fetch, newDumpDir(dataDir)).WithProcsLimit(dumpProcs)
			return d.Dump(cmd.Context(), args[0], args[1:])
		},
	}
)

type fetchFunc func(ctx context.Context, c *client.Client, args []string,
) (any, error)

func newFetchCmd(use, short string, args cobra.PositionalArgs,
	fetch fetchFunc,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := common.NewClient()
			if err != nil {
				return err //nolint:wrapcheck // already has context
			}
			doc, err := fetch(cmd.Context(), c, args)
			if err != nil {
				return err
			}
			return printDoc(cmd.OutOrStdout(), doc)
		},
	}
}

func printDoc(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("print document: %w", err)
	}
	return nil
}

func parseDate(name, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return t, fmt.Errorf("invalid %v %q, want YYYY-MM-DD: %w", name, s, err)
	}
	return t, nil
}

func init() {
	priceCmd := newFetchCmd("price SYMBOL", "Price history of symbol",
		cobra.ExactArgs(1),
		func(ctx context.Context, c *client.Client, args []string) (any, error) {
			if unadjusted {
				return c.UnadjustedPriceHistory(ctx, args[0])
			}
			return c.PriceHistory(ctx, args[0])
		})
	priceCmd.Flags().BoolVar(&unadjusted, "unadjusted", false,
		"price history not adjusted for splits")

	picksCmd := newFetchCmd("picks GURU...", "Stock picks of gurus since date",
		cobra.MinimumNArgs(1),
		func(ctx context.Context, c *client.Client, args []string) (any, error) {
			since, err := parseDate("--since", picksSince)
			if err != nil {
				return nil, err
			}
			return c.GuruPicks(ctx, args, since, picksPage)
		})
	picksCmd.Flags().StringVar(&picksSince, "since", "",
		"picks since this date, YYYY-MM-DD")
	cobra.CheckErr(picksCmd.MarkFlagRequired("since"))
	picksCmd.Flags().IntVar(&picksPage, "page", 1, "page number")

	politicianTradesCmd := newFetchCmd("politician-trades",
		"One page of politician transactions", cobra.NoArgs,
		func(ctx context.Context, c *client.Client, args []string) (any, error) {
			return c.PoliticianTransactions(ctx, tradesPage, assetType)
		})
	politicianTradesCmd.Flags().IntVar(&tradesPage, "page", 1, "page number")
	politicianTradesCmd.Flags().StringVar(&assetType, "asset-type", "",
		"filter by asset type, all of them by default")

	listedCmd := newFetchCmd("stocks EXCHANGE", "All stocks of exchange",
		cobra.ExactArgs(1),
		func(ctx context.Context, c *client.Client, args []string) (any, error) {
			doc, err := c.ListedStocks(ctx, args[0])
			if err != nil || !withSymbols {
				return doc, err //nolint:wrapcheck // printed as is
			}
			stocks, err := client.Decode[[]client.Stock](doc)
			if err != nil {
				return nil, err //nolint:wrapcheck // has context
			}
			symbols := make([]string, len(stocks))
			for i := range stocks {
				symbols[i] = stocks[i].Symbol
			}
			return symbols, nil
		})
	listedCmd.Flags().BoolVar(&withSymbols, "symbols", false,
		"print symbols only")

	Cmd.AddCommand(
		newFetchCmd("financials SYMBOL", "Financial history of symbol",
			cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.Financials(ctx, args[0])
			}),
		newFetchCmd("keyratios SYMBOL", "Key ratios of symbol",
			cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.KeyRatios(ctx, args[0])
			}),
		newFetchCmd("quotes SYMBOL...", "Current quotes of symbols",
			cobra.MinimumNArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.Quotes(ctx, args...)
			}),
		priceCmd,
		newFetchCmd("summary SYMBOL", "Summary of symbol", cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.StockSummary(ctx, args[0])
			}),
		newFetchCmd("gurus [SYMBOL]", "All gurus, or guru trades of symbol",
			cobra.MaximumNArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				if len(args) > 0 {
					return c.GuruTrades(ctx, args[0])
				}
				return c.Gurus(ctx)
			}),
		newFetchCmd("insider [SYMBOL]",
			"Latest insider trades, or insider trades of symbol",
			cobra.MaximumNArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				if len(args) > 0 {
					return c.InsiderTrades(ctx, args[0])
				}
				return c.InsiderUpdates(ctx)
			}),
		picksCmd,
		newFetchCmd("portfolios GURU...", "Aggregated portfolios of gurus",
			cobra.MinimumNArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.GuruPortfolios(ctx, args...)
			}),
		newFetchCmd("exchanges", "Supported exchanges by country", cobra.NoArgs,
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.Exchanges(ctx)
			}),
		listedCmd,
		newFetchCmd("dividends SYMBOL", "Dividend history of symbol",
			cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.DividendHistory(ctx, args[0])
			}),
		newFetchCmd("estimate SYMBOL", "Analyst estimates of symbol",
			cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.AnalystEstimate(ctx, args[0])
			}),
		newFetchCmd("my-portfolios", "Personal portfolios", cobra.NoArgs,
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.PersonalPortfolios(ctx)
			}),
		newFetchCmd("updated YYYY-MM-DD",
			"Symbols with fundamentals updated within a week of date",
			cobra.ExactArgs(1),
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				date, err := parseDate("date", args[0])
				if err != nil {
					return nil, err
				}
				return c.UpdatedStocks(ctx, date)
			}),
		newFetchCmd("politicians", "All politicians", cobra.NoArgs,
			func(ctx context.Context, c *client.Client, args []string) (any, error) {
				return c.Politicians(ctx)
			}),
		politicianTradesCmd,
		&dumpCmd,
	)

	dumpCmd.Flags().StringVarP(&dataDir, "datadir", "d", "./",
		"store fetched documents into this directory")
}

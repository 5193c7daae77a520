package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dsh2dsh/gurufocus/client"
)

const dumpProcs = 4 // Number of parallel fetches

var kindFetchers = map[string]func(c *client.Client, ctx context.Context,
	symbol string) (any, error){
	"dividends":  (*client.Client).DividendHistory,
	"estimate":   (*client.Client).AnalystEstimate,
	"financials": (*client.Client).Financials,
	"gurus":      (*client.Client).GuruTrades,
	"insider":    (*client.Client).InsiderTrades,
	"keyratios":  (*client.Client).KeyRatios,
	"price":      (*client.Client).PriceHistory,
	"summary":    (*client.Client).StockSummary,
}

var fnameReplacer = strings.NewReplacer(":", "_", "/", "_", `\`, "_")

func dumpKinds() []string {
	kinds := make([]string, 0, len(kindFetchers))
	for kind := range kindFetchers {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func kindFetcher(c *client.Client, kind string) (Fetcher, error) {
	fn, ok := kindFetchers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q, want one of: %v", kind,
			strings.Join(dumpKinds(), ", "))
	}
	return func(ctx context.Context, symbol string) (any, error) {
		return fn(c, ctx, symbol)
	}, nil
}

// --------------------------------------------------

func NewDump(fetch Fetcher, st Storage) *Dump {
	return &Dump{
		fetch:   fetch,
		storage: st,
		procs:   1,
	}
}

// Fetcher returns document of symbol.
type Fetcher func(ctx context.Context, symbol string) (any, error)

type Storage interface {
	Save(path, fname string, r io.Reader) error
}

type Dump struct {
	fetch   Fetcher
	storage Storage

	procs int
}

func (self *Dump) WithProcsLimit(lim int) *Dump {
	self.procs = lim
	return self
}

// Dump fetches document of every symbol and saves it as kind/symbol.json.
// Unknown symbols are skipped.
func (self *Dump) Dump(ctx context.Context, kind string, symbols []string,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(self.procs)

	for i, symbol := range symbols {
		if ctx.Err() != nil {
			break
		}
		symbol := symbol
		log.Printf("%v/%v: %v of %v", i+1, len(symbols), kind, symbol)
		g.Go(func() error { return self.dumpSymbol(ctx, kind, symbol) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dump of %v: %w", kind, err)
	}
	return nil
}

func (self *Dump) dumpSymbol(ctx context.Context, kind, symbol string) error {
	doc, err := self.fetch(ctx, symbol)
	if err != nil {
		var statusErr *client.UnexpectedStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode() == http.StatusNotFound {
			log.Printf("skip %v: %v", symbol, statusErr)
			return nil
		}
		return fmt.Errorf("fetch %q: %w", symbol, err)
	}

	var buf bytes.Buffer
	if err := printDoc(&buf, doc); err != nil {
		return fmt.Errorf("document of %q: %w", symbol, err)
	}

	if err := self.storage.Save(kind, docFileName(symbol), &buf); err != nil {
		return fmt.Errorf("save %q: %w", symbol, err)
	}
	return nil
}

// docFileName returns file name for symbol, like NYSE_KO.json for NYSE:KO.
func docFileName(symbol string) string {
	return fnameReplacer.Replace(symbol) + ".json"
}

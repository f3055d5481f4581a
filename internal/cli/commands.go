package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/aristath/etfoverlap/internal/modules/search"
	"github.com/google/subcommands"
)

// Analyzer runs an overlap analysis for the analyze command.
type Analyzer interface {
	Analyze(ctx context.Context, tickers []string) *overlap.Analysis
}

// ETFSearcher looks up ETFs for the search command.
type ETFSearcher interface {
	SearchETFs(ctx context.Context, query string) ([]search.ETFMatch, error)
}

// Commands returns every subcommand backed by the given services.
func Commands(analyzer Analyzer, searcher ETFSearcher, maxTickers int) []subcommands.Command {
	return []subcommands.Command{
		&analyzeCmd{analyzer: analyzer, maxTickers: maxTickers, out: os.Stdout},
		&searchCmd{searcher: searcher, out: os.Stdout},
	}
}

type analyzeCmd struct {
	analyzer   Analyzer
	maxTickers int
	out        io.Writer
	plain      bool
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "Compute the pairwise holdings overlap of ETFs."
}
func (*analyzeCmd) Usage() string {
	return `analyze [-plain] <ticker> <ticker>...:
  Fetches the top holdings of every ticker and prints the overlap matrix,
  the holdings shared by each pair and summary statistics.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled terminal output")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required")
		return subcommands.ExitUsageError
	}
	if c.maxTickers > 0 && f.NArg() > c.maxTickers {
		fmt.Fprintf(os.Stderr, "Error: at most %d tickers are allowed\n", c.maxTickers)
		return subcommands.ExitUsageError
	}

	tickers := make([]string, 0, f.NArg())
	for _, arg := range f.Args() {
		t := strings.ToUpper(strings.TrimSpace(arg))
		if t == "" {
			fmt.Fprintln(os.Stderr, "Error: tickers cannot be blank")
			return subcommands.ExitUsageError
		}
		tickers = append(tickers, t)
	}

	analysis := c.analyzer.Analyze(ctx, tickers)
	out, err := render(AnalysisMarkdown(analysis, overlap.Summarize(analysis)), c.plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(c.out, out)

	if analysis.Degraded > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d of %d funds returned no holdings data\n", analysis.Degraded, len(tickers))
	}
	return subcommands.ExitSuccess
}

type searchCmd struct {
	searcher ETFSearcher
	out      io.Writer
	plain    bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "Search for ETFs by name or ticker." }
func (*searchCmd) Usage() string {
	return `search [-plain] <query>:
  Searches the quote provider and lists matching ETFs.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled terminal output")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: search query is required")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	matches, err := c.searcher.SearchETFs(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := render(SearchMarkdown(query, matches), c.plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(c.out, out)
	return subcommands.ExitSuccess
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/aristath/etfoverlap/internal/modules/overlap"
	"github.com/aristath/etfoverlap/internal/modules/search"
	testutil "github.com/aristath/etfoverlap/internal/testing"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f)
}

func newOverlapService(provider *testutil.MockHoldingsProvider) *overlap.Service {
	return overlap.NewService(overlap.NewOrchestrator(provider, 0, zerolog.Nop()), zerolog.Nop())
}

func TestCommands(t *testing.T) {
	cmds := Commands(nil, nil, 5)

	require.Len(t, cmds, 2)
	assert.Equal(t, "analyze", cmds[0].Name())
	assert.Equal(t, "search", cmds[1].Name())
	for _, c := range cmds {
		assert.NotEmpty(t, c.Synopsis())
		assert.NotEmpty(t, c.Usage())
	}
}

func TestAnalyzeCmd(t *testing.T) {
	provider := testutil.NewMockHoldingsProvider()
	provider.SetHoldings("SPY", testutil.FundAHoldings())
	provider.SetHoldings("QQQ", testutil.FundBHoldings())
	var out bytes.Buffer
	cmd := &analyzeCmd{analyzer: newOverlapService(provider), maxTickers: 5, out: &out}

	status := runCommand(t, cmd, "-plain", "spy", "QQQ")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "| **SPY** | 100.00% (3) | 12.00% (2) |")
	assert.Contains(t, out.String(), "| SPY | SPY Exchange Traded Fund | USD | 3 | 21.00% |")
	assert.Equal(t, 1, provider.Calls("SPY"))
}

func TestAnalyzeCmd_DegradedFundStillSucceeds(t *testing.T) {
	provider := testutil.NewMockHoldingsProvider()
	provider.SetHoldings("SPY", testutil.FundAHoldings())
	provider.SetError("BAD", errors.New("upstream down"))
	var out bytes.Buffer
	cmd := &analyzeCmd{analyzer: newOverlapService(provider), maxTickers: 5, out: &out}

	status := runCommand(t, cmd, "-plain", "SPY", "BAD")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "## SPY / BAD: 0.00%")
}

func TestAnalyzeCmd_UsageErrors(t *testing.T) {
	provider := testutil.NewMockHoldingsProvider()
	cmd := &analyzeCmd{analyzer: newOverlapService(provider), maxTickers: 2, out: &bytes.Buffer{}}

	assert.Equal(t, subcommands.ExitUsageError, runCommand(t, cmd))
	assert.Equal(t, subcommands.ExitUsageError, runCommand(t, cmd, "A", "B", "C"))
	assert.Equal(t, subcommands.ExitUsageError, runCommand(t, cmd, "A", " "))
	assert.Equal(t, 0, provider.Calls("A"))
}

func TestSearchCmd(t *testing.T) {
	searcher := new(testutil.MockSymbolSearcher)
	searcher.On("Search", mock.Anything, "invesco qqq").Return(testutil.NewSearchFixtures(), nil)
	var out bytes.Buffer
	cmd := &searchCmd{searcher: search.NewService(searcher, zerolog.Nop()), out: &out}

	status := runCommand(t, cmd, "-plain", "invesco", "qqq")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "Found 2 ETFs for 'invesco qqq':")
	assert.NotContains(t, out.String(), "QCOM")
	searcher.AssertExpectations(t)
}

func TestSearchCmd_ProviderError(t *testing.T) {
	searcher := new(testutil.MockSymbolSearcher)
	searcher.On("Search", mock.Anything, "qqq").Return(nil, errors.New("boom"))
	var out bytes.Buffer
	cmd := &searchCmd{searcher: search.NewService(searcher, zerolog.Nop()), out: &out}

	assert.Equal(t, subcommands.ExitFailure, runCommand(t, cmd, "qqq"))
	assert.Empty(t, out.String())
}

func TestSearchCmd_MissingQuery(t *testing.T) {
	cmd := &searchCmd{out: &bytes.Buffer{}}

	assert.Equal(t, subcommands.ExitUsageError, runCommand(t, cmd))
}

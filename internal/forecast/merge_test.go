package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/cashflow/internal/domain"
)

func TestParseMergeMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MergeMethod
		wantErr bool
	}{
		{name: "sum", input: "sum", want: MergeSum},
		{name: "override", input: "override", want: MergeOverride},
		{name: "mixed case with spaces", input: "  Override ", want: MergeOverride},
		{name: "unknown", input: "average", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMergeMethod(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownMergeMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_SingleSetIsIdentity(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	d2 := domain.NewDate(2024, 1, 15)
	input := SeriesSet{
		"acc-a": {{Date: d1, Balance: decimal.NewFromInt(100)}, {Date: d2, Balance: decimal.NewFromInt(80)}},
	}

	for _, method := range []MergeMethod{MergeSum, MergeOverride} {
		out, err := NewMergeCalculator(method).Merge([]SeriesSet{input})
		require.NoError(t, err)
		assert.Equal(t, input, out, "method %s", method)
	}
}

func TestMerge_SumAddsExplicitPoints(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	baseline := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(100)}}}
	adjustment := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(-50)}}}

	out, err := NewMergeCalculator(MergeSum).Merge([]SeriesSet{baseline, adjustment})
	require.NoError(t, err)

	series := out["acc-a"]
	require.Len(t, series, 1)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(50)), "got %s", series[0].Balance)
}

func TestMerge_SumForwardFillsAcrossGaps(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	d2 := domain.NewDate(2024, 1, 10)
	d3 := domain.NewDate(2024, 1, 20)

	baseline := SeriesSet{"acc-a": {
		{Date: d1, Balance: decimal.NewFromInt(1000)},
		{Date: d3, Balance: decimal.NewFromInt(900)},
	}}
	adjustment := SeriesSet{"acc-a": {
		{Date: d2, Balance: decimal.NewFromInt(-50)},
	}}

	out, err := NewMergeCalculator(MergeSum).Merge([]SeriesSet{baseline, adjustment})
	require.NoError(t, err)

	series := out["acc-a"]
	require.Len(t, series, 3)

	// d2 carries the baseline's last known 1000 plus the explicit -50;
	// d3 carries the adjustment's forward-filled -50.
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[1].Balance.Equal(decimal.NewFromInt(950)), "got %s", series[1].Balance)
	assert.True(t, series[2].Balance.Equal(decimal.NewFromInt(850)), "got %s", series[2].Balance)
}

func TestMerge_SumIsOrderInsensitive(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	d2 := domain.NewDate(2024, 1, 10)
	a := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(100)}}}
	b := SeriesSet{"acc-a": {{Date: d2, Balance: decimal.NewFromInt(-30)}}}

	ab, err := NewMergeCalculator(MergeSum).Merge([]SeriesSet{a, b})
	require.NoError(t, err)
	ba, err := NewMergeCalculator(MergeSum).Merge([]SeriesSet{b, a})
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestMerge_OverrideLastListedWins(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	baseline := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(100)}}}
	adjustment := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(-50)}}}

	out, err := NewMergeCalculator(MergeOverride).Merge([]SeriesSet{baseline, adjustment})
	require.NoError(t, err)

	series := out["acc-a"]
	require.Len(t, series, 1)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(-50)), "got %s", series[0].Balance)
}

func TestMerge_OverrideKeepsEarlierSetAtUncoveredDates(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	d2 := domain.NewDate(2024, 1, 10)
	baseline := SeriesSet{"acc-a": {
		{Date: d1, Balance: decimal.NewFromInt(100)},
		{Date: d2, Balance: decimal.NewFromInt(70)},
	}}
	patch := SeriesSet{"acc-a": {{Date: d2, Balance: decimal.NewFromInt(0)}}}

	out, err := NewMergeCalculator(MergeOverride).Merge([]SeriesSet{baseline, patch})
	require.NoError(t, err)

	series := out["acc-a"]
	require.Len(t, series, 2)
	assert.True(t, series[0].Balance.Equal(decimal.NewFromInt(100)), "d1 keeps the baseline point")
	assert.True(t, series[1].Balance.Equal(decimal.Zero), "d2 takes the patch point")
}

func TestMerge_DisjointAccountsPassThrough(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	a := SeriesSet{"acc-a": {{Date: d1, Balance: decimal.NewFromInt(10)}}}
	b := SeriesSet{"acc-b": {{Date: d1, Balance: decimal.NewFromInt(20)}}}

	out, err := NewMergeCalculator(MergeSum).Merge([]SeriesSet{a, b})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.True(t, out["acc-a"][0].Balance.Equal(decimal.NewFromInt(10)))
	assert.True(t, out["acc-b"][0].Balance.Equal(decimal.NewFromInt(20)))
}

func TestMerge_UnknownMethodFailsClosed(t *testing.T) {
	_, err := NewMergeCalculator("median").Merge([]SeriesSet{{}})
	require.ErrorIs(t, err, domain.ErrUnknownMergeMethod)
}

func TestMerge_NoSets(t *testing.T) {
	out, err := NewMergeCalculator(MergeSum).Merge(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

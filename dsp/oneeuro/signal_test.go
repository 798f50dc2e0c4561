package oneeuro

import (
	"encoding/csv"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-oneeuro/internal/testutil"
)

type signalRecord struct {
	timestamp float64
	noisy     []float64
	filtered  []float64
}

func loadSignalFixture(t *testing.T) []signalRecord {
	t.Helper()

	file, err := os.Open("testdata/signal.csv")
	require.NoError(t, err, "cannot open signal fixture")
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	require.Equal(t,
		[]string{"timestamp", "origin_x", "origin_y", "noisy_x", "noisy_y", "filtered_x", "filtered_y"},
		rows[0])

	records := make([]signalRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make([]float64, len(row))
		for i, cell := range row {
			fields[i], err = strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
		}
		records = append(records, signalRecord{
			timestamp: fields[0],
			noisy:     []float64{fields[3], fields[4]},
			filtered:  []float64{fields[5], fields[6]},
		})
	}
	return records
}

// TestSignal2D replays the bundled noisy 2-D trajectory and checks every
// filtered output against the precomputed reference, driving the rate from
// the recorded timestamp deltas.
func TestSignal2D(t *testing.T) {
	records := loadSignalFixture(t)

	f, err := New(Config{Rate: 60, MinCutoff: 1, Beta: 0.007, DCutoff: 1})
	require.NoError(t, err)

	state, err := NewState(records[0].noisy)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, state.Data(), records[0].filtered, 1e-6)

	prev := records[0].timestamp
	for i, rec := range records[1:] {
		rate := 1 / (rec.timestamp - prev)
		require.NoError(t, f.FilterRate(state, rec.noisy, rate), "row %d", i+1)
		testutil.RequireSliceNearlyEqual(t, state.Data(), rec.filtered, 1e-6)
		testutil.RequireFinite(t, state.Data())
		prev = rec.timestamp
	}
}

// TestSignal2DReducesJitter checks the qualitative contract on the fixture:
// the filtered trail carries far less sample-to-sample jitter (second
// difference energy) than the noisy input.
func TestSignal2DReducesJitter(t *testing.T) {
	records := loadSignalFixture(t)

	jitter := func(pick func(signalRecord) []float64) float64 {
		var e float64
		for i := 2; i < len(records); i++ {
			for k := range 2 {
				d2 := pick(records[i])[k] - 2*pick(records[i-1])[k] + pick(records[i-2])[k]
				e += d2 * d2
			}
		}
		return e
	}

	noisy := jitter(func(r signalRecord) []float64 { return r.noisy })
	filtered := jitter(func(r signalRecord) []float64 { return r.filtered })
	require.Less(t, filtered, noisy/10,
		"filtering should suppress at least an order of magnitude of jitter")
}

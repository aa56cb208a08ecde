package pref

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/prefkit/prefkit/lib/store"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	benchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmarks the configured store with typed operations",
		RunE:    runBench,
		PreRunE: processBenchConfig,
	}
	benchKeyPrefix = "__bench"
	benchOps       = 10_000
)

func init() {
	// add flags
	key := "ops"
	benchCmd.Flags().Int(key, 10_000, "Number of operations per benchmark")
	key = "csv"
	benchCmd.Flags().String(key, "", "Optional path to save benchmark results as CSV")
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	benchOps = viper.GetInt("ops")
	return nil
}

func runBench(cmd *cobra.Command, _ []string) error {
	benchmarks := []struct {
		name string
		op   func(key string)
	}{
		{"set", func(key string) { prefStore.Set(key, store.MustValue(int64(1))) }},
		{"get", func(key string) { prefStore.Get(key) }},
		{"has", func(key string) { prefStore.Has(key) }},
		{"del", func(key string) { prefStore.Remove(key) }},
	}

	results := make([][]string, 0, len(benchmarks)+1)
	results = append(results, []string{"op", "ops", "mean_us", "p50_us", "p99_us"})

	for _, b := range benchmarks {
		h := gometrics.NewHistogram(gometrics.NewUniformSample(benchOps))

		for i := 0; i < benchOps; i++ {
			key := fmt.Sprintf("%s-%d", benchKeyPrefix, i)
			start := time.Now()
			b.op(key)
			h.Update(time.Since(start).Nanoseconds())
		}

		ps := h.Percentiles([]float64{0.5, 0.99})
		fmt.Printf("%-4s | ops=%d | mean=%.1fus | p50=%.1fus | p99=%.1fus\n",
			b.name, benchOps, h.Mean()/1e3, ps[0]/1e3, ps[1]/1e3)

		results = append(results, []string{
			b.name,
			strconv.Itoa(benchOps),
			strconv.FormatFloat(h.Mean()/1e3, 'f', 1, 64),
			strconv.FormatFloat(ps[0]/1e3, 'f', 1, 64),
			strconv.FormatFloat(ps[1]/1e3, 'f', 1, 64),
		})
	}

	if path := viper.GetString("csv"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv file: %w", err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.WriteAll(results); err != nil {
			return fmt.Errorf("write csv file: %w", err)
		}
		fmt.Printf("results saved to %s\n", path)
	}

	return nil
}

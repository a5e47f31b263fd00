// Command deltabench runs the resemblance-detection and delta-codec
// pipeline over a small demonstration fixture and prints a per-codec
// comparison table.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/odessbench/deltabench/internal/config"
	"github.com/odessbench/deltabench/internal/delta"
	"github.com/odessbench/deltabench/internal/driver"
	"github.com/odessbench/deltabench/internal/feature"
	"github.com/odessbench/deltabench/internal/index"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to a YAML config file (defaults to the built-in Odess parameters)")
		verbose    = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", "path", *configPath, "err", err)
		}
		cfg = loaded
	}

	gen, err := feature.New(cfg.SampleMask, cfg.FeatureCount, cfg.SuperFeatureCount, cfg.FixTransformConstants)
	if err != nil {
		logger.Fatal("constructing feature generator", "err", err)
	}

	records := driver.DemoFixture()
	logger.Info("loaded fixture", "records", len(records))

	table := index.New(gen)
	for key, value := range records {
		table.Put(key, value)
	}
	logger.Info("indexed records", "candidates_for_delta", table.CountAllSimilarRecords())

	clusters := driver.BuildClusters(table)
	logger.Info("scanning similar records using Odess similarity detection", "clusters", len(clusters))

	dispatcher := delta.NewDispatcher()
	logger.Info("start delta compress")

	var report []driver.Stats
	for _, typ := range []delta.Type{delta.XDelta, delta.EDelta, delta.GDelta, delta.GDeltaOriginal} {
		stats := driver.Run(dispatcher, typ, records, clusters)
		if stats.UncompressFail > 0 {
			logger.Warn("uncompress failures", "codec", typ, "count", stats.UncompressFail)
		}
		report = append(report, stats)
	}

	driver.Report(os.Stdout, report)
}

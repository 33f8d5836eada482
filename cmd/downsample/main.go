package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/EllieDunstone/matrix-downsampling/pkg/config"
	"github.com/EllieDunstone/matrix-downsampling/pkg/data"
	"github.com/EllieDunstone/matrix-downsampling/pkg/downsample"
	"github.com/EllieDunstone/matrix-downsampling/pkg/matrix"
	"github.com/EllieDunstone/matrix-downsampling/pkg/stats"
	"github.com/EllieDunstone/matrix-downsampling/pkg/viz"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --input        : Path to input count matrix (TSV/whitespace table,
//                  header row, first column = mutation-type label).
//                  .gz input is decompressed transparently.
// --output       : Path for the downsampled matrix. Default = downsampled_matrix.tsv
// --threshold    : Downsampling threshold. 0 = derive automatically via
//                  Tukey's upper fence over sample totals.
// --config       : Optional YAML config file; flags override its values.
// --plots        : Directory for burden histogram/box plot. Empty = no plots.
// --strict-sbs96 : Require the canonical 96 SBS trinucleotide row labels.
// --preview      : Number of result rows to preview in console.
//
// Example:
//   go run main.go --input mutation_matrix.tsv --output downsampled.tsv --plots ./plots
//
// ---------------------------------------------------------------------
//

func main() {
	inputPath := flag.String("input", "", "Path to input count matrix")
	outputPath := flag.String("output", "", "Path for the downsampled matrix")
	threshold := flag.Float64("threshold", 0, "Downsampling threshold (0 = derive automatically)")
	configPath := flag.String("config", "", "Optional YAML config file")
	plotDir := flag.String("plots", "", "Directory for burden plots (empty = no plots)")
	strictSBS96 := flag.Bool("strict-sbs96", false, "Require canonical SBS96 row labels")
	previewRows := flag.Int("preview", 0, "Number of result rows to preview in console")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	// Flags the user actually set win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputPath
		case "output":
			cfg.Output = *outputPath
		case "threshold":
			cfg.Threshold = *threshold
		case "plots":
			cfg.PlotDir = *plotDir
		case "strict-sbs96":
			cfg.StrictSBS96 = *strictSBS96
		case "preview":
			cfg.Preview = *previewRows
		}
	})
	if cfg.Input == "" {
		log.Fatalf("No input matrix given (use --input or the config file)")
	}

	m, err := data.ReadTableFile(cfg.Input)
	if err != nil {
		log.Fatalf("Error reading matrix: %v", err)
	}
	fmt.Printf("Loaded matrix: %d mutation types, %d samples\n", m.Rows(), m.Cols())
	if cfg.StrictSBS96 && !matrix.IsSBS96(m) {
		log.Fatalf("Matrix row labels are not the canonical SBS96 contexts")
	}

	out, res, err := downsample.Run(m, downsample.Options{Threshold: cfg.Threshold})
	if err != nil {
		log.Fatalf("Downsampling failed: %v", err)
	}
	reportRun(res)

	if err := data.WriteTableFile(cfg.Output, out, "MutationType"); err != nil {
		log.Fatalf("Error writing matrix: %v", err)
	}
	fmt.Printf("Saved downsampled matrix to %s\n", cfg.Output)

	if cfg.PlotDir != "" {
		savePlots(cfg.PlotDir, m.SampleTotals(), res.Threshold)
	}
	if cfg.Preview > 0 {
		previewMatrix(out, cfg.Preview)
	}
}

// reportRun prints the advisory run summary: threshold, outlier count and
// the range of the rescaled totals.
func reportRun(res *downsample.Result) {
	source := "supplied"
	if res.Derived {
		source = "derived"
	}
	fmt.Printf("Threshold (%s): %.2f\n", source, res.Threshold)
	if len(res.Outliers) == 0 {
		fmt.Println("No samples exceed the threshold; matrix unchanged")
		return
	}
	totals := make([]float64, len(res.Outliers))
	for i, o := range res.Outliers {
		totals[i] = o.Total
	}
	lo, hi := stats.MinMax(totals)
	fmt.Printf("Downsampling %d samples with totals in [%.0f, %.0f]\n", len(res.Outliers), lo, hi)
	for _, o := range res.Outliers {
		fmt.Printf("  %s: total %.0f, factor %.4f\n", o.Sample, o.Total, o.Factor)
	}
}

func savePlots(dir string, totals []float64, threshold float64) {
	histPath := filepath.Join(dir, "burden_histogram.png")
	if err := viz.BurdenHistogram(totals, threshold, histPath); err != nil {
		log.Fatalf("Error saving histogram: %v", err)
	}
	fmt.Printf("Saved burden histogram to %s\n", histPath)

	boxPath := filepath.Join(dir, "burden_boxplot.png")
	if err := viz.BurdenBoxPlot(totals, boxPath); err != nil {
		log.Fatalf("Error saving box plot: %v", err)
	}
	fmt.Printf("Saved burden box plot to %s\n", boxPath)
}

// previewMatrix prints the first n rows of the matrix with headers.
func previewMatrix(m *matrix.Matrix, n int) {
	if n > m.Rows() {
		n = m.Rows()
	}
	fmt.Printf("%-18s", "MutationType")
	for _, s := range m.Samples {
		fmt.Printf("%-15s", s)
	}
	fmt.Println()
	for i := 0; i < n; i++ {
		fmt.Printf("%-18s", m.RowLabels[i])
		for j := 0; j < m.Cols(); j++ {
			fmt.Printf("%-15.0f", m.At(i, j))
		}
		fmt.Println()
	}
}

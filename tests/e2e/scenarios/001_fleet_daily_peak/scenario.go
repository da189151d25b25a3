package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"license-usage-aggregator/internal/app"
	"license-usage-aggregator/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	tasksPerProduct = 4  // Task files per product directory per day
	hoursPerDay     = 24 // Sample timestamps per task file
	pvuMultiplier   = 70
)

type product struct {
	id     string
	name   string
	metric string
	ratio  string // empty for standalone products
}

var (
	days     = []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	clusters = []string{"https://api.ocp-a:6443", "ocp-b"}
	products = []product{
		{id: "p1", name: "IBM MQ", metric: "VIRTUAL_PROCESSOR_CORE"},
		{id: "p2", name: "IBM Db2", metric: "PROCESSOR_VALUE_UNIT"},
		{id: "p3", name: "IBM App Connect", metric: "VIRTUAL_PROCESSOR_CORE", ratio: "1:2"},
		{id: "p4", name: "IBM API Connect", metric: "VIRTUAL_PROCESSOR_CORE", ratio: "1:1"},
	}
	bundle = struct{ name, id, metric string }{
		name:   "IBM Cloud Pak for Integration",
		id:     "cp4i",
		metric: "VIRTUAL_PROCESSOR_CORE",
	}
)

// ### End - fixed configs

const taskHeader = "Timestamp,ProductName,ProductId,Metric,vCPU,ClusterId,CloudpakName,CloudpakId,CloudpakMetric,ProductCloudpakRatio"

type rowKey struct {
	date, name, id, metric, cluster string
}

// main runs the e2e scenario: 001_fleet_daily_peak
//
// This scenario generates a fleet of task files across several days, products and clusters,
// runs the aggregator on them and checks every emitted row against quantities computed
// independently from the generator.
//
// What it tests:
//   - Walking <day>/<productId>/<task> trees and summing overlapping task samples
//   - Daily peak reduction with rounding up of fractional vCPU
//   - PROCESSOR_VALUE_UNIT conversion
//   - Cloudpak blending of two members with 1:2 and 1:1 ratios, one of them without productId
//   - One output file per cluster, with cluster ids sanitized in file names
//   - Identical output whatever the number of day workers
//
// Expected results:
//   - Two report files, one per cluster
//   - Per cluster and day: one row for each standalone product and one row for the bundle
func main() {
	// these configs can be changed to run the scenario
	workDir := ".tmp/e2e-fleet" // Work directory relative to project root
	dayWorkers := 3             // Days aggregated concurrently
	writers := 4                // Concurrent task file writers

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	workPath := filepath.Join(projectRoot, workDir)
	inputPath := filepath.Join(workPath, "input")
	outputPath := filepath.Join(workPath, "output")

	fmt.Printf("Cleaning work directory: %s\n", workPath)
	if err := os.RemoveAll(workPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to clean work directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_fleet_daily_peak")
	fmt.Printf("DAYS: %v\n", days)
	fmt.Printf("CLUSTERS: %v\n", clusters)
	fmt.Printf("TASKS_PER_PRODUCT: %d\n", tasksPerProduct)
	fmt.Printf("DAY_WORKERS: %d\n", dayWorkers)
	fmt.Println()

	if err := generateInput(inputPath, writers); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate input: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d task files\n", len(days)*len(products)*tasksPerProduct)

	cfg := &configs.Config{
		Log:         configs.LogConfig{Level: "info", Format: "console"},
		Input:       configs.InputConfig{Source: configs.SourceLocal},
		Aggregation: configs.AggregationConfig{DayWorkers: dayWorkers, PVUMultiplier: pvuMultiplier},
		Report:      configs.ReportConfig{FilePrefix: "products_daily", Extension: "csv", UseCRLF: true},
	}
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	if err := application.Run(context.Background(), inputPath, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Run failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	expected := expectedRows()
	actual, files, err := readReports(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read reports: %v\n", err)
		os.Exit(1)
	}

	var mismatches []string
	for key, want := range expected {
		got, ok := actual[key]
		switch {
		case !ok:
			mismatches = append(mismatches, fmt.Sprintf("missing row %+v", key))
		case got != want:
			mismatches = append(mismatches, fmt.Sprintf("row %+v: got %d, want %d", key, got, want))
		}
	}
	for key := range actual {
		if _, ok := expected[key]; !ok {
			mismatches = append(mismatches, fmt.Sprintf("unexpected row %+v", key))
		}
	}
	if len(files) != len(clusters) {
		mismatches = append(mismatches, fmt.Sprintf("got %d report files, want %d", len(files), len(clusters)))
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Report files: %d\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}
	fmt.Printf("Expected rows: %d\n", len(expected))
	fmt.Printf("Actual rows: %d\n", len(actual))

	if len(mismatches) > 0 {
		sort.Strings(mismatches)
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "MISMATCH: %s\n", m)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from inside the project")
		}
		dir = parent
	}
}

// quarters is the sample value, in quarter vCPUs, one task reports for a product on a cluster
// at an hour.
func quarters(dayIndex, productIndex, task, clusterIndex, hour int) int {
	return (dayIndex*7+productIndex*5+task*3+clusterIndex*11+hour)%9 + 1
}

func generateInput(root string, writers int) error {
	type job struct {
		dayIndex, productIndex, task int
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := writeTask(root, j.dayIndex, j.productIndex, j.task); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}

	for d := range days {
		for p := range products {
			for task := 0; task < tasksPerProduct; task++ {
				jobs <- job{dayIndex: d, productIndex: p, task: task}
			}
		}
	}
	close(jobs)
	wg.Wait()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func writeTask(root string, dayIndex, productIndex, task int) error {
	p := products[productIndex]
	path := filepath.Join(root, days[dayIndex], p.id, fmt.Sprintf("task-%02d.csv", task))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lines := []string{taskHeader}
	for c, cluster := range clusters {
		for hour := 0; hour < hoursPerDay; hour++ {
			q := quarters(dayIndex, productIndex, task, c, hour)
			vcpu := strconv.FormatFloat(float64(q)/4, 'f', 2, 64)
			ts := fmt.Sprintf("%s %02d:00:00", days[dayIndex], hour)

			productID := p.id
			cloudpak := ",,,"
			if p.ratio != "" {
				cloudpak = fmt.Sprintf("%s,%s,%s,%s", bundle.name, bundle.id, bundle.metric, p.ratio)
				// the 1:2 member reports without a product id
				if p.ratio == "1:2" {
					productID = ""
				}
			}
			lines = append(lines, fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s", ts, p.name, productID, p.metric, vcpu, cluster, cloudpak))
		}
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func ceilDiv(n, d int) int64 {
	return int64((n + d - 1) / d)
}

func expectedRows() map[rowKey]int64 {
	out := make(map[rowKey]int64)
	for d, day := range days {
		for c, cluster := range clusters {
			bundlePeak := 0 // in eighths of a vCPU
			for p, prod := range products {
				peak := 0 // in quarters of a vCPU
				for hour := 0; hour < hoursPerDay; hour++ {
					sum := 0
					for task := 0; task < tasksPerProduct; task++ {
						sum += quarters(d, p, task, c, hour)
					}
					peak = max(peak, sum)
				}
				if prod.ratio != "" {
					continue
				}
				quantity := ceilDiv(peak, 4)
				if prod.metric == "PROCESSOR_VALUE_UNIT" {
					quantity *= pvuMultiplier
				}
				out[rowKey{day, prod.name, prod.id, prod.metric, cluster}] = quantity
			}

			for hour := 0; hour < hoursPerDay; hour++ {
				eighths := 0
				for p, prod := range products {
					if prod.ratio == "" {
						continue
					}
					weight := 2 // 1:1, quarters to eighths
					if prod.ratio == "1:2" {
						weight = 1
					}
					for task := 0; task < tasksPerProduct; task++ {
						eighths += weight * quarters(d, p, task, c, hour)
					}
				}
				bundlePeak = max(bundlePeak, eighths)
			}
			out[rowKey{day, bundle.name, bundle.id, bundle.metric, cluster}] = ceilDiv(bundlePeak, 8)
		}
	}
	return out
}

func readReports(dir string) (map[rowKey]int64, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	rows := make(map[rowKey]int64)
	var files []string
	for _, entry := range entries {
		files = append(files, entry.Name())

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, err
		}
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		for _, record := range records[1:] {
			quantity, err := strconv.ParseInt(record[4], 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", entry.Name(), err)
			}
			rows[rowKey{record[0], record[1], record[2], record[3], record[5]}] = quantity
		}
	}
	return rows, files, nil
}

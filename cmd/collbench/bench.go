package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/structlab/collections/bucketqueue"
	"github.com/structlab/collections/datarecording"
	"github.com/structlab/collections/dynarray"
	"github.com/structlab/collections/linkedlist"
	"github.com/structlab/collections/ringqueue"
)

// benchResult holds the results for one workload run.
type benchResult struct {
	Container string  `json:"container"`
	Ops       int64   `json:"ops"`
	Seconds   float64 `json:"seconds"`
	OpsPerSec float64 `json:"ops_per_sec"`
}

// benchReport represents a complete benchmark session.
type benchReport struct {
	SessionTime string        `json:"session_time"`
	NumCPU      int           `json:"num_cpu"`
	GoVersion   string        `json:"go_version"`
	Results     []benchResult `json:"results"`
}

type workload struct {
	name string
	run  func(ops int64, bar *progressbar.ProgressBar)
}

var (
	benchOps      int64
	benchJSONFile string
	benchDBFile   string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run synthetic workloads over every container",
	Run: func(_ *cobra.Command, _ []string) {
		runBenchmarks()
	},
}

func init() {
	benchCmd.Flags().Int64Var(&benchOps, "ops", 1000000,
		"number of operations per workload")
	benchCmd.Flags().StringVar(&benchJSONFile, "json", "",
		"write a JSON report to this file")
	benchCmd.Flags().StringVar(&benchDBFile, "record", "",
		"record results to this SQLite file (without extension)")

	rootCmd.AddCommand(benchCmd)
}

func runBenchmarks() {
	report := benchReport{
		SessionTime: time.Now().Format(time.RFC3339),
		NumCPU:      runtime.NumCPU(),
		GoVersion:   runtime.Version(),
	}

	for _, w := range workloads() {
		bar := progressbar.Default(benchOps, w.name)

		start := time.Now()
		w.run(benchOps, bar)
		elapsed := time.Since(start).Seconds()

		result := benchResult{
			Container: w.name,
			Ops:       benchOps,
			Seconds:   elapsed,
			OpsPerSec: float64(benchOps) / elapsed,
		}
		report.Results = append(report.Results, result)

		fmt.Printf("%-12s %12.0f ops/s\n", w.name, result.OpsPerSec)
	}

	if benchJSONFile != "" {
		writeJSONReport(report)
	}

	if benchDBFile != "" {
		recordReport(report)
	}
}

func workloads() []workload {
	return []workload{
		{name: "dynarray", run: benchDynArray},
		{name: "linkedlist", run: benchLinkedList},
		{name: "stack", run: benchStack},
		{name: "ringqueue", run: benchRingQueue},
		{name: "bucketqueue", run: benchBucketQueue},
	}
}

func benchDynArray(ops int64, bar *progressbar.ProgressBar) {
	a := dynarray.MakeBuilder[int]().Build("BenchArray")

	half := ops / 2
	for i := int64(0); i < half; i++ {
		a.Append(rand.Int())
		mustAdvance(bar)
	}

	for i := half; i < ops; i++ {
		if err := a.RemoveLast(); err != nil {
			panic(err)
		}
		mustAdvance(bar)
	}
}

func benchLinkedList(ops int64, bar *progressbar.ProgressBar) {
	l := linkedlist.MakeBuilder[int]().Build("BenchList")

	half := ops / 2
	for i := int64(0); i < half; i++ {
		l.Add(rand.Int())
		mustAdvance(bar)
	}

	for i := half; i < ops; i++ {
		if _, err := l.Pop(); err != nil {
			panic(err)
		}
		mustAdvance(bar)
	}
}

func benchStack(ops int64, bar *progressbar.ProgressBar) {
	s := linkedlist.MakeStackBuilder[int]().Build("BenchStack")

	half := ops / 2
	for i := int64(0); i < half; i++ {
		s.Add(rand.Int())
		mustAdvance(bar)
	}

	for i := half; i < ops; i++ {
		if _, err := s.Pop(); err != nil {
			panic(err)
		}
		mustAdvance(bar)
	}
}

func benchRingQueue(ops int64, bar *progressbar.ProgressBar) {
	q := ringqueue.MakeBuilder[int]().
		WithCapacity(1024).
		Build("BenchRing")

	for i := int64(0); i < ops; i += 2 {
		if err := q.Enqueue(rand.Int()); err != nil {
			panic(err)
		}
		if _, err := q.Dequeue(); err != nil {
			panic(err)
		}
		mustAdvance(bar)
		mustAdvance(bar)
	}
}

func benchBucketQueue(ops int64, bar *progressbar.ProgressBar) {
	q := bucketqueue.MakeBuilder[int]().Build("BenchBuckets")

	half := ops / 2
	for i := int64(0); i < half; i++ {
		if err := q.Add(rand.Int(), int(i%3)+1); err != nil {
			panic(err)
		}
		mustAdvance(bar)
	}

	for i := half; i < ops; i++ {
		if _, err := q.Pop(); err != nil {
			panic(err)
		}
		mustAdvance(bar)
	}
}

func mustAdvance(bar *progressbar.ProgressBar) {
	if err := bar.Add(1); err != nil {
		panic(err)
	}
}

func writeJSONReport(report benchReport) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(benchJSONFile, data, 0644)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Report written to %s\n", benchJSONFile)
}

func recordReport(report benchReport) {
	recorder := datarecording.New(benchDBFile)
	defer recorder.Close()

	recorder.CreateTable("bench", benchResult{})
	for _, r := range report.Results {
		recorder.InsertData("bench", r)
	}
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/structlab/collections/bucketqueue"
	"github.com/structlab/collections/ringqueue"
	"github.com/structlab/collections/session"
)

var (
	servePort    int
	serveBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a monitored demo session",
	Long: `Serve runs a never-ending stream of random operations over a ` +
		`ring queue and a bucket queue, and exposes their state through ` +
		`the monitoring dashboard. The MONITOR_PORT environment variable, ` +
		`optionally read from a .env file, selects the port.`,
	Run: func(_ *cobra.Command, _ []string) {
		runDemoSession()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0,
		"port for the monitoring server, overrides MONITOR_PORT")
	serveCmd.Flags().BoolVar(&serveBrowser, "open-browser", false,
		"open the dashboard in the default browser")

	rootCmd.AddCommand(serveCmd)
}

func monitorPort() int {
	if servePort > 0 {
		return servePort
	}

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	portStr := os.Getenv("MONITOR_PORT")
	if portStr == "" {
		return 0
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid MONITOR_PORT %q, using a random "+
			"port instead.\n", portStr)
		return 0
	}

	return port
}

func runDemoSession() {
	builder := session.MakeBuilder().
		WithAnalysisPeriod(1000)

	if port := monitorPort(); port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	if serveBrowser {
		builder = builder.WithBrowserOpen()
	}

	s := builder.Build()
	defer s.Terminate()

	rooms := ringqueue.MakeBuilder[int]().
		WithCapacity(64).
		Build("Rooms")
	triage := bucketqueue.MakeBuilder[int]().
		WithLevels(3).
		Build("Triage")

	s.RegisterContainer(rooms)
	s.RegisterContainer(triage)

	for i := 0; ; i++ {
		switch rand.Intn(4) {
		case 0:
			_ = rooms.Enqueue(i)
		case 1:
			_, _ = rooms.Dequeue()
		case 2:
			_ = triage.Add(i, rand.Intn(3)+1)
		default:
			_, _ = triage.Pop()
		}

		time.Sleep(time.Millisecond)
	}
}

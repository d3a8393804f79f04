// chromez-demo generates a sample trace with a simulated game-style
// workload: a physics loop on the main goroutine and an asset-loading
// fan-out across workers. Open the output in chrome://tracing or
// https://ui.perfetto.dev.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/chromez"
)

var (
	output   string
	workers  int
	assets   int
	steps    int
	disabled bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "chromez-demo",
	Short: "generate a sample chrome trace from a simulated workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", chromez.DefaultOutput,
		"trace output path")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 4,
		"asset-loading worker goroutines")
	rootCmd.Flags().IntVarP(&assets, "assets", "a", 16,
		"assets to load across the workers")
	rootCmd.Flags().IntVarP(&steps, "steps", "s", 5,
		"physics steps on the main goroutine")
	rootCmd.Flags().BoolVar(&disabled, "disabled", false,
		"swap in the no-op tracer (no file is written)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var tr chromez.Tracer = chromez.NopTracer{}
	if disabled {
		log.Info("tracing disabled, running the workload untraced")
	} else {
		tr = chromez.New()
	}

	tr.BeginSession(output)

	tr.AddInstantEvent("startup", "app")
	log.WithFields(logrus.Fields{
		"workers": workers,
		"assets":  assets,
	}).Info("loading assets")
	loadAssets(tr)

	log.WithField("steps", steps).Info("running physics")
	for i := 0; i < steps; i++ {
		updatePhysics(tr, i)
	}
	tr.AddInstantEvent("shutdown", "app")

	if err := tr.EndSession(); err != nil {
		log.WithError(err).Error("trace not written")
		return err
	}
	if !disabled {
		log.WithField("path", output).Info("trace written")
	}
	return nil
}

// loadAssets fans asset jobs out across worker goroutines, each job
// wrapped in its own scope. The whole fan-out is bracketed by a manual
// begin/end pair so the viewer shows it as one phase.
func loadAssets(tr chromez.Tracer) {
	tr.AddBeginEvent("LoadAssets", "loading")
	defer tr.AddEndEvent("LoadAssets", "loading")

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				loadAsset(tr, id)
			}
		}()
	}
	for id := 0; id < assets; id++ {
		jobs <- id
	}
	close(jobs)
	wg.Wait()
}

func loadAsset(tr chromez.Tracer, id int) {
	defer tr.StartScopeCategory(fmt.Sprintf("asset-%02d", id), "loading").End()
	time.Sleep(time.Duration(2+rand.Intn(8)) * time.Millisecond)
}

func updatePhysics(tr chromez.Tracer, step int) {
	defer tr.StartScopeCategory("UpdatePhysics", "sim").End()
	time.Sleep(time.Duration(3+rand.Intn(4)) * time.Millisecond)
	if step == steps/2 {
		tr.AddInstantEvent("midpoint", "sim")
	}
}

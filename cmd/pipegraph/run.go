package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	pipegraph "github.com/connormcn37/pipe-graph"
	"github.com/connormcn37/pipe-graph/internal/cli"
	"github.com/connormcn37/pipe-graph/internal/logging"
	"github.com/connormcn37/pipe-graph/internal/presentation/ansi"
	httpadapter "github.com/connormcn37/pipe-graph/pkg/adapters/http"
	redisadapter "github.com/connormcn37/pipe-graph/pkg/adapters/redis"
	"github.com/connormcn37/pipe-graph/pkg/observability"
	"github.com/connormcn37/pipe-graph/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>",
	Short: "Drive a graph definition tick by tick",
	Long: `Builds an engine from a graph definition and steps it at a fixed rate
until the tick budget is spent or the process is interrupted. Committed
outputs can be mirrored to Redis and served over HTTP while running.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(level)

		ticks, _ := cmd.Flags().GetUint64("ticks")
		interval, _ := cmd.Flags().GetDuration("interval")
		workers, _ := cmd.Flags().GetInt("workers")
		listen, _ := cmd.Flags().GetString("listen")
		redisAddr, _ := cmd.Flags().GetString("redis")
		preview, _ := cmd.Flags().GetString("preview")

		opts := cli.BuildOptions{Workers: workers}

		// Collect metrics only when a server will expose them.
		var reg *prometheus.Registry
		if listen != "" {
			reg = prometheus.NewRegistry()
			opts.Hooks = observability.NewMetrics(reg).Hooks()
		}

		engine, err := cli.LoadEngine(args[0], opts, logger)
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}

		if listen != "" {
			handler := httpadapter.NewHandler(engine,
				httpadapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
			srv := &http.Server{Addr: listen, Handler: handler}

			go func() {
				fmt.Printf("Serving diagnostics on %s\n", listen)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					fmt.Printf("Server error: %v\n", err)
				}
			}()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
		}

		runnerOpts := []runner.Option{
			runner.WithLogger(logger),
			runner.WithMaxTicks(ticks),
			runner.WithInterval(interval),
		}
		if redisAddr != "" {
			tap := redisadapter.New(redisAddr, "", 0)
			defer tap.Close()
			runnerOpts = append(runnerOpts, runner.WithTap(tap))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		done, err := runner.New(engine, runnerOpts...).Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Printf("Run error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Completed %d ticks\n", done)

		if preview != "" {
			printPreview(engine, preview)
		}
	},
}

// printPreview renders the named node's committed frame as ANSI art.
// Intended for small frames; pixels map to half-block cells 1:1.
func printPreview(engine *pipegraph.Engine, name string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("Preview skipped: stdout is not a terminal")
		return
	}

	for _, info := range engine.Inspect() {
		if info.Name != name {
			continue
		}

		sig, err := engine.Output(info.ID)
		if err != nil {
			fmt.Printf("Preview error: %v\n", err)
			return
		}
		frame, ok := sig.Frame()
		if !ok {
			fmt.Printf("Node %s carries no frame to preview\n", name)
			return
		}

		fmt.Print(ansi.RenderFrame(frame))
		return
	}
	fmt.Printf("Preview error: no node named %s\n", name)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	runCmd.Flags().Duration("interval", 100*time.Millisecond, "Delay between ticks (0 = tight loop)")
	runCmd.Flags().Int("workers", 0, "Parallel compute workers (0 = serial)")
	runCmd.Flags().String("listen", "", "Serve the diagnostics API on this address (e.g. :8080)")
	runCmd.Flags().String("redis", "", "Mirror committed outputs to this Redis address")
	runCmd.Flags().String("preview", "", "Render the named node's frame after the run")
}

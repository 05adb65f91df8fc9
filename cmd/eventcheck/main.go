// Command eventcheck validates event payloads against the shared schemas.
//
// Usage:
//
//	eventcheck [flags] [file ...]
//
// Each file holds one JSON event or a JSON array of events; "-" or no file
// reads standard input. Exit status is 1 when any payload is invalid and 2
// on usage or settings errors.
//
// Flags:
//
//	-settings path   settings file (.yaml, .yml, .json); default reads the environment
//	-env-file path   dotenv file layered under the environment (default .env)
//	-metrics kind    otel, prometheus or none (default none)
//	-metrics-file p  with -metrics prometheus, write the textfile exposition to p
//	-print           print each valid event in canonical JSON
//	-list            list the registered event types and exit
//	-show-settings   print the resolved settings (secrets redacted) and exit
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/config"
	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/event"
	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/observability"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	settingsPath string
	envFile      string
	metrics      string
	metricsFile  string
	print        bool
	list         bool
	showSettings bool
	files        []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("eventcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.settingsPath, "settings", "", "Path to a settings file (.yaml, .yml, .json)")
	fs.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "Dotenv file read when no settings file is given")
	fs.StringVar(&opts.metrics, "metrics", "none", "Metrics backend: otel, prometheus or none")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "With -metrics prometheus, write metrics to this file")
	fs.BoolVar(&opts.print, "print", false, "Print each valid event in canonical JSON")
	fs.BoolVar(&opts.list, "list", false, "List registered event types and exit")
	fs.BoolVar(&opts.showSettings, "show-settings", false, "Print the resolved settings and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.metrics {
	case "otel", "prometheus", "none":
	default:
		return opts, fmt.Errorf("unknown -metrics value %q", opts.metrics)
	}
	opts.files = fs.Args()
	if len(opts.files) == 0 {
		opts.files = []string{"-"}
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	if opts.list {
		listSchemas(stdout)
		return exitOK
	}

	settings, source, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(stderr, "eventcheck: %v\n", err)
		return exitUsage
	}
	if opts.showSettings {
		slog.New(slog.NewJSONHandler(stdout, nil)).Info("resolved settings",
			slog.String("source", source),
			slog.Any("settings", settings),
		)
		return exitOK
	}

	logger := settings.App.NewLogger(stderr)
	observability.LogSettingsLoaded(logger, source, settings.App.Environment)

	recorder, flush, err := newRecorder(opts, logger)
	if err != nil {
		fmt.Fprintf(stderr, "eventcheck: %v\n", err)
		return exitUsage
	}
	recorder.RecordSettingsLoad(ctx, source, nil)

	codec := event.NewCodec(
		event.WithLogger(logger),
		event.WithMetrics(recorder),
	)

	var valid, invalid int
	for _, name := range opts.files {
		payloads, err := readPayloads(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			invalid++
			continue
		}
		for i, payload := range payloads {
			label := name
			if len(payloads) > 1 {
				label = fmt.Sprintf("%s[%d]", name, i)
			}

			evt, err := codec.Decode(ctx, payload)
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", label, err)
				invalid++
				continue
			}
			valid++

			if opts.print {
				data, err := codec.Encode(ctx, evt)
				if err != nil {
					fmt.Fprintf(stderr, "%s: %v\n", label, err)
					continue
				}
				fmt.Fprintln(stdout, string(data))
			}
		}
	}

	if err := flush(ctx); err != nil {
		fmt.Fprintf(stderr, "eventcheck: %v\n", err)
	}
	fmt.Fprintf(stderr, "%d valid, %d invalid\n", valid, invalid)

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func loadSettings(opts options) (config.Settings, string, error) {
	if opts.settingsPath == "" {
		env, err := config.LoadEnv(opts.envFile)
		if err != nil {
			return config.Settings{}, "env", err
		}
		s, err := config.SettingsFromEnv(env)
		return s, "env", err
	}
	s, err := config.LoadSettingsFile(opts.settingsPath)
	return s, "file", err
}

// newRecorder builds the metrics backend selected by -metrics. The returned
// flush func reports or writes what was recorded.
func newRecorder(opts options, logger *slog.Logger) (observability.MetricsRecorder, func(context.Context) error, error) {
	switch opts.metrics {
	case "prometheus":
		reg := prometheus.NewRegistry()
		m, err := observability.NewPrometheusMetrics(reg)
		if err != nil {
			return nil, nil, err
		}
		return m, func(context.Context) error {
			if opts.metricsFile == "" {
				return nil
			}
			return prometheus.WriteToTextfile(opts.metricsFile, reg)
		}, nil

	case "otel":
		reader := sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		m, err := observability.NewMetricsRecorderFromProvider(provider)
		if err != nil {
			return nil, nil, err
		}
		return m, func(ctx context.Context) error {
			defer provider.Shutdown(ctx)
			var rm metricdata.ResourceMetrics
			if err := reader.Collect(ctx, &rm); err != nil {
				return err
			}
			logCounters(logger, &rm)
			return nil
		}, nil

	default:
		return observability.NoopMetrics{}, func(context.Context) error { return nil }, nil
	}
}

// logCounters logs the total of every integer counter.
func logCounters(logger *slog.Logger, rm *metricdata.ResourceMetrics) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			logger.Info("metric", slog.String("name", m.Name), slog.Int64("value", total))
		}
	}
}

// readPayloads reads one JSON event or an array of events.
func readPayloads(name string, stdin io.Reader) ([]json.RawMessage, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("no input")
	}

	if data[0] != '[' {
		return []json.RawMessage{data}, nil
	}
	var payloads []json.RawMessage
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parse event array: %w", err)
	}
	return payloads, nil
}

func listSchemas(w io.Writer) {
	event.DefaultRegistry.Range(func(s *event.Schema) bool {
		fmt.Fprintf(w, "%-26s %-10s %s\n", s.Type, s.Domain, s.Name)
		return true
	})
}

// Command dronecfg lists the drone catalog, or imports a saved build, prints its summary
// and writes it back out in CSV or JSON.
//
// Usage:
//
//	dronecfg -list
//	dronecfg -import build.csv [-format json] [-max-price 250] > build.json
//
// Configuration defaults come from the DRONE_* environment variables; flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.opentelemetry.io/otel"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/shell"
	"github.com/AntonStoeckl/drone-assembly-go/shell/codec"
	"github.com/AntonStoeckl/drone-assembly-go/shell/config"
	"github.com/AntonStoeckl/drone-assembly-go/shell/oteladapters"
)

const serviceName = "dronecfg"

var errNothingToDo = errors.New("nothing to do: pass -list or -import <file>")

type options struct {
	list          bool
	importPath    string
	format        string
	maxPrice      string
	observability bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dronecfg:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if err = applyOverrides(&cfg, opts); err != nil {
		return err
	}

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	switch {
	case opts.list:
		return printCatalog(stdout, catalog)
	case opts.importPath != "":
		return importBuild(cfg, opts, catalog, stdout, stderr)
	default:
		return errNothingToDo
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&opts.list, "list", false, "Print the catalog")
	flags.StringVar(&opts.importPath, "import", "", "Build file to import (.csv or .json)")
	flags.StringVar(&opts.format, "format", "", "Export format: csv or json (default from DRONE_EXPORT_FORMAT)")
	flags.StringVar(&opts.maxPrice, "max-price", "", "Advisory max price, 0 for none (default from DRONE_MAX_PRICE)")
	flags.BoolVar(&opts.observability, "observability-enabled", false, "Report logs and metrics to the global OpenTelemetry providers")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func applyOverrides(cfg *config.Config, opts options) error {
	if opts.format != "" {
		format, err := codec.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		cfg.ExportFormat = format
	}

	if opts.maxPrice != "" {
		maxPrice, err := strconv.ParseFloat(opts.maxPrice, 64)
		if err != nil {
			return fmt.Errorf("-max-price %q: %w", opts.maxPrice, err)
		}
		cfg.MaxPrice = maxPrice
	}

	return cfg.Validate()
}

func importBuild(cfg config.Config, opts options, catalog *core.Catalog, stdout, stderr io.Writer) error {
	inputFormat, err := codec.FormatOf(opts.importPath)
	if err != nil {
		inputFormat = cfg.ExportFormat
	}

	file, err := os.Open(opts.importPath)
	if err != nil {
		return fmt.Errorf("open build: %w", err)
	}
	defer func() { _ = file.Close() }()

	entries, err := codec.Decode(file, inputFormat)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.importPath, err)
	}

	storeOptions := []shell.Option{shell.WithMaxPrice(cfg.PriceLimit())}
	if opts.observability {
		storeOptions = append(storeOptions,
			shell.WithLogger(oteladapters.NewSlogBridgeLogger(serviceName)),
			shell.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(serviceName))),
		)
	} else {
		storeOptions = append(storeOptions, shell.WithLogger(newLogger(stderr, cfg.LogLevel)))
	}

	store, err := shell.NewStore(catalog, storeOptions...)
	if err != nil {
		return err
	}

	if err = store.ImportAssembly(entries); err != nil {
		return fmt.Errorf("%s: %w", opts.importPath, err)
	}

	printSummary(stderr, store)

	return codec.Encode(stdout, cfg.ExportFormat, store.ExportAssembly())
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printCatalog(w io.Writer, catalog *core.Catalog) error {
	p := message.NewPrinter(language.English)
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	p.Fprintln(table, "ID\tTYPE\tNAME\tPRICE\tSIZES")
	for _, frame := range catalog.Frames() {
		p.Fprintf(table, "%d\t%s\t%s\t$%.2f\t%s\n",
			frame.ID, frame.Category.DisplayName(), frame.Name, frame.Price, sizesOf(frame.CompatibleSizes))
	}
	for _, part := range catalog.Parts() {
		p.Fprintf(table, "%d\t%s\t%s\t$%.2f\t%s\n",
			part.ID, part.Category.DisplayName(), part.Name, part.Price, sizesOf(part.CompatibleSizes))
	}

	return table.Flush()
}

func printSummary(w io.Writer, store *shell.Store) {
	p := message.NewPrinter(language.English)
	bill := store.Bill()

	for _, section := range bill.Sections {
		p.Fprintf(w, "%s:\n", section.DisplayName)
		for _, line := range section.Lines {
			p.Fprintf(w, "  %-60s $%.2f\n", line.Item.Name, line.Item.Price)
		}
	}

	p.Fprintf(w, "Total: $%.2f\n", bill.Total)
	p.Fprintf(w, "Progress: %d of %d connection points\n", bill.Progress.Installed, bill.Progress.Total)

	if err := store.MaxPrice().Get().CheckPrice(bill.Total); err != nil {
		p.Fprintf(w, "Over budget: %v\n", err)
	}
}

func sizesOf(sizes []core.FrameSizeInt) string {
	labels := make([]string, 0, len(sizes))
	for _, size := range sizes {
		labels = append(labels, strconv.Itoa(size)+`"`)
	}

	return strings.Join(labels, ", ")
}

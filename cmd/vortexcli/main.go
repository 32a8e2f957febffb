package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/version"
	"gopkg.in/alecthomas/kingpin.v2"

	inspectcontext "github.com/grafana/vortex-inspect/pkg/inspect/context"
)

var cfg struct {
	verbose bool
}

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Inspect the metadata and encodings of Vortex files.").UsageWriter(os.Stdout)
	app.Version(version.Print("vortexcli"))
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("0").BoolVar(&cfg.verbose)

	footerCmd := app.Command("footer", "Print the footer of Vortex files and the encodings they declare.")
	footerParams := addFooterParams(footerCmd)

	encodingCmd := app.Command("encoding", "Analyze the encoding tree of a Vortex file.")
	encodingParams := addEncodingParams(encodingCmd)

	// parse command line arguments
	parsedCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// enable verbose logging if requested
	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	reg := prometheus.NewRegistry()
	ctx := inspectcontext.WithLogger(context.Background(), logger)
	ctx = inspectcontext.WithRegistry(ctx, reg)
	ctx = withOutput(ctx, os.Stdout)

	switch parsedCmd {
	case footerCmd.FullCommand():
		err := footerInspect(ctx, footerParams)
		logBucketOperations(ctx, reg)
		if err != nil {
			os.Exit(checkError(err))
		}
	case encodingCmd.FullCommand():
		if err := encodingInspect(ctx, encodingParams); err != nil {
			os.Exit(checkError(err))
		}
	default:
		level.Error(logger).Log("msg", "unknown command", "cmd", parsedCmd)
	}
}

func checkError(err error) int {
	switch err {
	case nil:
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return 1
}

type commander interface {
	Flag(name, help string) *kingpin.FlagClause
	Arg(name, help string) *kingpin.ArgClause
}

type contextKey uint8

const (
	contextKeyOutput contextKey = iota
)

func withOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, contextKeyOutput, w)
}

func output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(contextKeyOutput).(io.Writer); ok {
		return w
	}
	return os.Stdout
}

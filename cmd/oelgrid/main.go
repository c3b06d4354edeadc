package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/voidshard/tilegrid"
)

const desc = `Prints the tile layer of an Ogmo level (.oel) as a grid of tile ids.

Tiles are read from the third element under the level root (or --layer) and
placed on a 16x15 grid of 16px tiles. Cells without a tile print as 0.`

type options struct {
	// level to read, bg.oel in the working dir unless told otherwise
	Input string `short:"i" default:"bg.oel" help:"input level file"`

	// how to print the grid
	Format string `short:"f" default:"text" enum:"text,js" help:"output format (text, js)"`

	// rows are printed with a space after every id unless trimmed
	Trim bool `help:"drop the trailing space after the last id of each row"`

	// find the tile layer by tag rather than position
	Layer string `help:"read tiles from the first root child with this tag, rather than the third child"`

	// log at debug level
	Verbose bool `short:"v" help:"log debug output to stderr"`
}

var cli options

func main() {
	execute(&cli, os.Args[1:], os.Stdout, os.Stderr, os.Exit)
}

// execute parses `args` into opts & runs the conversion. Errors are printed
// to stderr & passed to exit as a status of 1.
func execute(opts *options, args []string, stdout, stderr io.Writer, exit func(int)) {
	parser, err := kong.New(
		opts,
		kong.Name("oelgrid"),
		kong.Description(desc),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		panic(err)
	}

	_, err = parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		parser.FatalIfErrorf(err)
		return
	}

	err = run(*opts, stdout, logger)
	logger.Sync()
	parser.FatalIfErrorf(err)
}

// newLogger writes json to stderr, warnings & up unless verbose
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// run converts opts.Input & writes the result to `out`. Nothing is written
// unless the whole conversion succeeds.
func run(opts options, out io.Writer, logger *zap.Logger) error {
	fname, err := homedir.Expand(opts.Input)
	if err != nil {
		return err
	}

	lvl, err := tilegrid.Open(fname)
	if err != nil {
		return err
	}
	logger.Debug("decoded level",
		zap.String("file", fname),
		zap.String("root", lvl.XMLName.Local),
		zap.Int("children", len(lvl.Children)),
	)

	cfg := tilegrid.DefaultConfig()
	cfg.LayerName = opts.Layer

	g, err := tilegrid.Convert(lvl, cfg)
	if err != nil {
		return fmt.Errorf("converting %s: %w", fname, err)
	}
	logger.Debug("built grid",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("tiles", g.Count()),
	)

	buf := bytes.Buffer{}
	err = g.Encode(&buf, opts.Format, opts.Trim)
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(out)
	return err
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jessevdk/go-flags"

	compressing "github.com/go-git/go-compressing"
	"github.com/go-git/go-compressing/config"
	"github.com/go-git/go-compressing/utils/trace"
)

const (
	bin = "go-compressing"

	generalErrorExitCode = 1
)

// globalOptions are accepted before and after any command.
type globalOptions struct {
	Algorithm  string `short:"a" long:"algorithm" description:"Compression algorithm." value-name:"lzw"`
	Stats      bool   `long:"stats" description:"Print the statistics of the run."`
	Config     string `long:"config" description:"Config file, by default ~/.compressingconfig." value-name:"FILE"`
	Verbose    bool   `short:"v" long:"verbose" description:"Activates the verbose mode."`
	TraceCodes bool   `long:"trace-codes" description:"Traces every code and dictionary entry."`
}

var (
	globals globalOptions

	// ctx is cancelled on interrupt.
	ctx = context.Background()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// cmd holds what every command needs: the filesystem the paths are resolved
// on and the effective configuration.
type cmd struct {
	fs billy.Filesystem
}

func (c *cmd) filesystem() billy.Filesystem {
	if c.fs == nil {
		c.fs = osfs.New("")
	}

	return c.fs
}

// path returns p ready to be used with filesystem.
func (c *cmd) path(p string) (string, error) {
	if c.fs != nil {
		return p, nil
	}

	return filepath.Abs(p)
}

// config loads the config file and merges the global options over it, then
// enables the tracing targets it asks for.
func (c *cmd) config(o *config.Config) (*config.Config, error) {
	path := globals.Config
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	path, err := c.path(path)
	if err != nil {
		return nil, err
	}

	file, err := config.LoadConfig(c.filesystem(), path)
	if err != nil {
		return nil, err
	}

	o.Core.Algorithm = globals.Algorithm
	o.Core.Stats = globals.Stats
	o.Trace.General = globals.Verbose
	o.Trace.Codes = globals.TraceCodes
	if err := o.Merge(file); err != nil {
		return nil, err
	}

	var target trace.Target
	if o.Trace.General {
		target |= trace.General
	}

	if o.Trace.Codes {
		target |= trace.Codes
	}

	trace.SetTarget(target)
	return o, nil
}

func (c *cmd) algorithm(o *config.Config) (compressing.Algorithm, error) {
	return compressing.ParseAlgorithm(o.Core.Algorithm)
}

// newParser returns a parser writing the global options to a zeroed globals.
func newParser() *flags.Parser {
	globals = globalOptions{}

	parser := flags.NewNamedParser(bin, flags.HelpFlag|flags.PassDoubleDash)
	parser.AddGroup("Global Options", "", &globals)

	parser.AddCommand("compress", "Compress a file.", "", &CmdCompress{})
	parser.AddCommand("decompress", "Decompress a file.", "", &CmdDecompress{})
	parser.AddCommand("inspect", "Show the byte distribution of a file.", "", &CmdInspect{})
	parser.AddCommand("version", "Show the version information.", "", &CmdVersion{})
	return parser
}

func main() {
	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(run(newParser(), os.Args[1:]))
}

func run(parser *flags.Parser, args []string) int {
	_, err := parser.ParseArgs(args)
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) {
		switch ferr.Type {
		case flags.ErrHelp:
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		case flags.ErrCommandRequired:
			parser.WriteHelp(stdout)
			return generalErrorExitCode
		}
	}

	fmt.Fprintln(stderr, "ERR:", err)
	return generalErrorExitCode
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jsformat"
	"github.com/fwojciec/jsformat/fs"
	jsformathttp "github.com/fwojciec/jsformat/http"
	"github.com/fwojciec/jsformat/jsbeautifier"
	jsslog "github.com/fwojciec/jsformat/slog"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// JSON files consulted for option defaults. Set before calling Run().
	ConfigPaths []string

	// Services, replaceable for end-to-end testing.
	Remote    jsformat.Fetcher
	Local     jsformat.Fetcher
	Formatter jsformat.Formatter
	Writer    jsformat.Writer
}

// NewMain returns a new instance of Main with production services.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{".jsformat.json", "~/.jsformat.json"},
		Remote:      jsformathttp.NewFetcher(),
		Local:       fs.NewReader(),
		Formatter:   jsbeautifier.NewFormatter(),
		Writer:      fs.NewWriter(),
	}
}

// Run executes the CLI with the given arguments. It is the single place
// where failures are reported: the message goes to stderr followed by
// the usage text, and the error is returned for the exit status.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err == nil {
		return nil
	}
	fmt.Fprintf(stderr, "error: %s\n", reportMessage(err))
	printUsage(stderr)
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Help and version flags print and then call Exit, which must not
	// terminate the process here.
	exited := false
	cli := &CLI{}
	parser, err := kong.New(cli, append(parserOptions(),
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)...)
	if err != nil {
		return jsformat.Errorf(jsformat.EINVALID, "failed to load configuration: %s", err)
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return jsformat.Errorf(jsformat.EUSAGE, "%s", err)
	}

	input, err := cli.Input()
	if err != nil {
		return err
	}

	opts := cli.FormatOptions()
	if err := opts.Validate(); err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Source: &jsformat.Source{
			Remote: jsslog.NewLoggingFetcher(m.Remote, logger),
			Local:  jsslog.NewLoggingFetcher(m.Local, logger),
		},
		Formatter: jsslog.NewLoggingFormatter(m.Formatter, logger),
		Writer:    jsslog.NewLoggingWriter(m.Writer, logger),
	}

	cmd := &FormatCmd{
		Input:   input,
		Options: opts,
		Target:  cli.OutputTarget(),
	}

	return cmd.Run(deps)
}

// parserOptions are shared by the main parser and the usage printer.
func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("jsformat"),
		kong.Description("Beautify JavaScript read from a local file or a remote URL.\n\n" +
			"Switch boolean options off with --no-NAME or --NAME=false. " +
			"A separate false argument is taken as the file/url."),
		kong.Vars{"version": version},
	}
}

// printUsage writes the help text to w.
func printUsage(w io.Writer) {
	parser, err := kong.New(&CLI{}, append(parserOptions(),
		kong.Configuration(kong.JSON),
		kong.Writers(w, w),
		kong.Exit(func(int) {}),
	)...)
	if err != nil {
		return
	}
	_, _ = parser.Parse([]string{"--help"})
}

// reportMessage returns the text shown to the user for err. Errors that did
// not originate in jsformat keep their own text.
func reportMessage(err error) string {
	var e *jsformat.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// newLogger returns a debug logger on stderr when verbose is set and a
// logger that drops everything otherwise.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

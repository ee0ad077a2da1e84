/*
 * © 2024 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	sglsp "github.com/sourcegraph/go-lsp"
	"github.com/spf13/pflag"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/di"
	"github.com/snyk/snyk-highlight/application/entrypoint"
	"github.com/snyk/snyk-highlight/application/highlighting"
	"github.com/snyk/snyk-highlight/application/report"
	"github.com/snyk/snyk-highlight/domain/ide/hover"
	"github.com/snyk/snyk-highlight/internal/types"
)

type options struct {
	version bool
	output  string
	hover   string
	files   []string
}

func main() {
	defer entrypoint.OnPanicRecover()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	c := config.New()
	config.SetCurrentConfig(c)
	opts, usage, err := parseFlags(c, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return 1
	}
	if opts.version {
		fmt.Fprintln(stdout, config.Version)
		return 0
	}
	if len(opts.files) == 0 {
		fmt.Fprintln(stderr, "no annotation file given")
		fmt.Fprint(stderr, usage)
		return 1
	}

	logger := c.Logger().With().Str("method", "main").Logger()
	logger.Info().Msgf("Version: %s", config.Version)
	logger.Trace().Interface("environment", os.Environ()).Msg("start environment")
	entrypoint.ApplyDefaultCPUCap(c)
	di.Init(c)
	defer di.ErrorReporter().FlushErrorReporting()

	exitCode := 0
	for _, path := range opts.files {
		if err = highlightFile(ctx, c, path, opts, stdout); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("couldn't highlight file")
			fmt.Fprintln(stderr, err)
			exitCode = 1
		}
	}
	return exitCode
}

func highlightFile(ctx context.Context, c *config.Config, path string, opts options, stdout io.Writer) error {
	file, err := di.AnnotationLoader().Load(path)
	if err != nil {
		return err
	}
	di.InitApplication(c, highlighting.FilePasses(file)...)
	service := di.HighlightingService()
	if err = service.Highlight(ctx, file.Document); err != nil {
		return err
	}
	di.FileWatcher().SetFileAsAnalyzed(file.Document.Path())
	if opts.hover != "" {
		return printHover(file.Document, opts.hover, stdout)
	}
	printer, err := report.NewPrinter(c, opts.output, stdout, di.CodeActionService())
	if err != nil {
		return err
	}
	return printer.Print(file.Document, file.Scope, service.Highlights(file.Document.Path()))
}

func printHover(document types.Document, position string, stdout io.Writer) error {
	var line, column int
	if _, err := fmt.Sscanf(position, "%d:%d", &line, &column); err != nil || line < 1 || column < 1 {
		return errors.Errorf("invalid hover position %q, expected <line:column>", position)
	}
	result := di.HoverService().GetHover(hover.Params{
		Document: document,
		Position: sglsp.Position{Line: line - 1, Character: column - 1},
	})
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "couldn't encode hover")
}

func parseFlags(c *config.Config, args []string) (options, string, error) {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	var buf bytes.Buffer
	flags.SetOutput(&buf)
	flags.Usage = func() {
		fmt.Fprintf(&buf, "Usage of %s [flags] <annotation file>...\n", args[0])
		flags.PrintDefaults()
	}

	var opts options
	flags.BoolVarP(&opts.version, "v", "v", false, "prints the version")
	logLevelFlag := flags.StringP("logLevelFlag", "l", "info", "sets the log-level to <trace|debug|info|warn|error|fatal>")
	logPathFlag := flags.StringP("logPathFlag", "f", "", "sets the log file")
	formatFlag := flags.StringP(
		"formatFlag",
		"o",
		config.FormatMd,
		"sets format of diagnostic messages. Accepted values \""+config.FormatMd+"\" and \""+config.FormatHtml+"\"")
	configFlag := flags.StringP(
		"configfile",
		"c",
		"",
		"provide the full path of a config file to use. format VARIABLENAME=VARIABLEVALUE")
	colorSchemeFlag := flags.StringP("colorScheme", "s", "", "color scheme file (yaml or toml)")
	minSeverityFlag := flags.String("minSeverity", "", "drops element highlights below this severity")
	flags.StringVar(&opts.hover, "hover", "", "prints the hover at <line:column> (1-based) instead of all highlights")
	flags.StringVar(&opts.output, "output", report.OutputText, "output of the highlights: \""+report.OutputText+"\" or \""+report.OutputJson+"\"")
	reportErrorsFlag := flags.Bool("reportErrors", false, "enables error reporting")

	if err := flags.Parse(args[1:]); err != nil {
		buf.Reset()
		flags.Usage()
		return opts, buf.String(), err
	}
	opts.files = flags.Args()

	if *configFlag != "" {
		if err := c.LoadEnvFile(*configFlag); err != nil {
			return opts, buf.String(), err
		}
	} else {
		c.ApplyEnvironment()
	}
	// explicitly given flags win over the environment
	c.SetLogLevel(*logLevelFlag)
	c.SetLogPath(*logPathFlag)
	c.ConfigureLogging()
	if flags.Changed("formatFlag") {
		c.SetFormat(*formatFlag)
	}
	if *colorSchemeFlag != "" {
		c.SetColorSchemePath(*colorSchemeFlag)
	}
	if *minSeverityFlag != "" {
		c.SetMinimumSeverity(*minSeverityFlag)
	}
	if flags.Changed("reportErrors") {
		c.SetErrorReportingEnabled(*reportErrorsFlag)
	}
	return opts, buf.String(), nil
}

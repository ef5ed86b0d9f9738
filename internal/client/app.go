package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-omnisearch/internal/adapter"
	"github.com/MKhiriev/go-omnisearch/internal/app"
	"github.com/MKhiriev/go-omnisearch/internal/config"
	"github.com/MKhiriev/go-omnisearch/internal/generator"
	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/MKhiriev/go-omnisearch/internal/output"
	"github.com/MKhiriev/go-omnisearch/internal/service"
	"github.com/MKhiriev/go-omnisearch/internal/templating"
	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/spf13/cobra"
)

// ErrCommandFailed marks errors that were already logged by the failing
// command.
var ErrCommandFailed = errors.New("command failed")

const role = "omnisearch"

// session holds the components built once the configuration is known.
type session struct {
	cfg      *config.ClientConfig
	services *service.Services
	pipeline *templating.Pipeline
	printer  *output.Printer
}

type App struct {
	info   models.AppBuildInfo
	stdout io.Writer
	stderr io.Writer

	root    *cobra.Command
	session *session
}

var _ Client = (*App)(nil)

// NewApp builds the command tree. Command output goes to stdout, logs and
// usage errors to stderr.
func NewApp(info models.AppBuildInfo, stdout, stderr io.Writer) *App {
	a := &App{info: info, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:               role,
		Short:             "Command-line client for the OmniSearch REST API",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newHelloCmd(),
		a.newLanguagesCmd(),
		a.newGetRecordsCmd(),
		a.newCreateRecordsCmd(),
		a.newGetRecordCmd(),
		a.newUpdateRecordCmd(),
		a.newDeleteRecordCmd(),
		a.newGetRecordObjectsCmd(),
		a.newCreateRecordObjectsCmd(),
		a.newDeleteRecordObjectsCmd(),
		a.newGetRecordObjectCmd(),
		a.newUpdateRecordObjectCmd(),
		a.newDeleteRecordObjectCmd(),
		a.newRecordContentCmd(),
		a.newRecordTranscriptCmd(),
		a.newSchemaCmd(),
		a.newSearchCmd(),
		a.newVersionCmd(),
	)
	a.root = root

	return a
}

// Run executes the command named by args. Failures of API commands are
// logged by the command itself; any other error is printed to stderr.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	err := a.root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrCommandFailed) {
		fmt.Fprintln(a.stderr, "Error:", err)
	}
	return err
}

// setup loads the configuration and builds the session for every command
// that talks to the API.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("%s: %w", app.MsgErrorGettingConfigs, err)
	}

	log := logger.NewClientLogger(role, cfg.Log, a.stderr)
	log.Debug().Str("host", cfg.API.Server).Str("version", cfg.API.Version).Msg("received configs")

	transport, err := adapter.NewHTTPTransport(adapter.Config{
		Host:    cfg.API.Server,
		Version: cfg.API.Version,
		Key:     cfg.API.Key,
		Timeout: cfg.API.RequestTimeout,
	}, log.Component("transport"))
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}

	a.session = &session{
		cfg:      cfg,
		services: service.NewServices(transport, log.Component("service")),
		pipeline: templating.NewPipeline(generator.New(cfg.Generator.Seed), log.Component("templating")),
		printer:  output.NewPrinter(a.stdout, cfg.Output.Format, cfg.Output.Colour),
	}

	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

// finish prints result, or logs msg and returns an [ErrCommandFailed] error
// when err is set.
func (a *App) finish(cmd *cobra.Command, msg string, result any, err error) error {
	if err != nil {
		return a.fail(cmd, msg, err)
	}
	return a.session.printer.Print(result)
}

func (a *App) fail(cmd *cobra.Command, msg string, err error) error {
	logger.FromContext(cmd.Context()).Error().Err(err).Msg(msg)
	return fmt.Errorf("%w: %s: %w", ErrCommandFailed, msg, err)
}

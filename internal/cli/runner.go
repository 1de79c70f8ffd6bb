package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/redthread/internal/config"
	"github.com/idilsaglam/redthread/internal/logging"
	"github.com/idilsaglam/redthread/internal/ui"
)

// Options swap the process streams and filesystem; zero values mean the
// real ones.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	Fs  afero.Fs
	// Logger, when set, replaces the one built from configuration.
	Logger *zap.Logger
}

// App describes one of the two programs.
type App struct {
	Name  string
	Short string

	session func(e *env) int
	browse  func(e *env) int
}

// env is what a session gets once configuration is resolved.
type env struct {
	cfg *config.Config
	log *zap.Logger
	p   *ui.Printer
	in  io.Reader
	fs  afero.Fs
}

var errUsage = errors.New("usage")

// Run executes app with args and returns an exit code
// (0 ok, 1 save failed, 2 usage or configuration error).
func Run(app App, args []string, opt Options) int {
	opt = opt.withDefaults()
	p := ui.NewPrinter(opt.Out, opt.Err)

	code := 0
	root := newRootCommand(app, opt, p, &code)
	root.SetArgs(args)
	root.SetIn(opt.In)
	root.SetOut(opt.Out)
	root.SetErr(opt.Err)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			p.Fail(err.Error())
		}
		return 2
	}
	return code
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return o
}

func newRootCommand(app App, opt Options, p *ui.Printer, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           app.Name,
		Short:         app.Short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := prepare(app.Name, cmd, opt, p)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck
			*code = app.session(e)
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.String("file", "", "data file (default "+app.Name+".json)")
	flags.String("theme", "", "color theme: classic, neon or mono")
	flags.String("log-level", "", "diagnostics level: debug, info, warn, error")

	root.AddCommand(&cobra.Command{
		Use:   "browse",
		Short: "Browse records in a full-screen list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := prepare(app.Name, cmd, opt, p)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck
			*code = app.browse(e)
			return nil
		},
	})
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		p.Fail(err.Error())
		cmd.PrintErrln(cmd.UsageString())
		return errUsage
	})
	return root
}

func prepare(app string, cmd *cobra.Command, opt Options, p *ui.Printer) (*env, error) {
	cfg, err := config.Load(app, cmd.Flags())
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)

	log := opt.Logger
	if log == nil {
		log, err = logging.New(cfg.Log, app)
		if err != nil {
			return nil, err
		}
	}
	return &env{cfg: cfg, log: log, p: p, in: opt.In, fs: opt.Fs}, nil
}

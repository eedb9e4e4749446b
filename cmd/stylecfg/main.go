package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/stylecfg/internal/app"
	"github.com/quantmind-br/stylecfg/internal/config"
	"github.com/quantmind-br/stylecfg/internal/manifest"
	"github.com/quantmind-br/stylecfg/internal/utils"
	"github.com/quantmind-br/stylecfg/pkg/version"
)

func main() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by the commands of one root command
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	c := &cli{v: v}

	rootCmd := &cobra.Command{
		Use:   "stylecfg [path]",
		Short: "Load and validate utility-class CSS build manifests",
		Long: `stylecfg loads the manifest of a utility-class CSS build tool
(content patterns, theme extensions, plugins), applies defaults,
and reports shape errors before the build tool ever sees the file.

Without a path, stylecfg looks for stylecfg.yaml, stylecfg.yml,
stylecfg.json or stylecfg.toml in the current directory.`,
		Version:       version.Short(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initConfig()
		},
		RunE: c.runShow,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ~/.stylecfg/config.yaml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	flags.StringP("format", "f", config.DefaultManifestFormat, "Output format: yaml, json, or toml")
	flags.StringP("dir", "C", config.DefaultManifestDir, "Directory searched for a manifest when no path is given")

	_ = v.BindPFlag("manifest.format", flags.Lookup("format"))
	_ = v.BindPFlag("manifest.dir", flags.Lookup("dir"))

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (c *cli) initConfig() {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}
}

// setup loads configuration and builds a checker logging to stderr.
// batch enables the progress bar unless check.progress is off.
func (c *cli) setup(cmd *cobra.Command, batch bool) (*config.Config, *app.Checker, error) {
	cfg, err := config.LoadWithViper(c.v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var progress io.Writer
	if batch && cfg.Check.Progress {
		progress = cmd.ErrOrStderr()
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: c.verbose,
	})

	checker, err := app.NewChecker(app.CheckerOptions{
		Config:   cfg,
		Logger:   log,
		Progress: progress,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, checker, nil
}

func (c *cli) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print the manifest with defaults applied",
		Long: `Print the manifest with defaults applied, in the format chosen by --format.
TOML has no null, so a manifest holding null theme or plugin values cannot
be shown as toml; use yaml or json instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runShow,
	}
}

func (c *cli) runShow(cmd *cobra.Command, args []string) error {
	cfg, checker, err := c.setup(cmd, false)
	if err != nil {
		return err
	}

	res, err := checker.Load(firstArg(args))
	if err != nil {
		return err
	}

	return manifest.Encode(cmd.OutOrStdout(), res.Manifest, cfg.ManifestFormat())
}

func (c *cli) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate one or more manifests",
		Long: `Validate manifests concurrently. Each argument may be a manifest file or a
directory containing one. Exits non-zero if any manifest fails to load.`,
		RunE: c.runCheck,
	}
	cmd.Flags().IntP("workers", "j", config.DefaultWorkers, "Number of concurrent workers")
	cmd.Flags().Bool("progress", config.DefaultProgress, "Show a progress bar when checking several manifests")
	_ = c.v.BindPFlag("check.workers", cmd.Flags().Lookup("workers"))
	_ = c.v.BindPFlag("check.progress", cmd.Flags().Lookup("progress"))
	return cmd
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	_, checker, err := c.setup(cmd, len(args) > 1)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := checker.Check(ctx, args)
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(out, "ok    %s (%d content patterns, %d plugins)\n",
				r.Path, len(r.Manifest.ContentPatterns()), len(r.Manifest.Plugins()))
		} else {
			fmt.Fprintf(out, "FAIL  %s: %v\n", displayPath(r.Path), r.Err)
		}
	}
	if err != nil {
		return err
	}

	if failed := app.Failures(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d manifests failed", len(failed), len(results))
	}
	return nil
}

func (c *cli) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter manifest",
		Long: `Write a starter manifest. The format follows the file extension; a
directory receives stylecfg.yaml. Existing files are kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing manifest")
	return cmd
}

func (c *cli) runInit(cmd *cobra.Command, args []string) error {
	_, checker, err := c.setup(cmd, false)
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	path, err := checker.Init(firstArg(args), force)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().JSON())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
	cmd.Flags().Bool("json", false, "Print version information as JSON")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func displayPath(path string) string {
	if path == "" {
		return "(default manifest)"
	}
	return path
}

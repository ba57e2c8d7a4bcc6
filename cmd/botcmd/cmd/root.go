package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jbdamask/botcmd/pkg/bot"
	"github.com/jbdamask/botcmd/pkg/catalog"
	"github.com/jbdamask/botcmd/pkg/commands"
	"github.com/jbdamask/botcmd/pkg/config"
	"github.com/jbdamask/botcmd/pkg/history"
	"github.com/jbdamask/botcmd/pkg/logging"
	"github.com/jbdamask/botcmd/pkg/render"
)

var (
	cfgFile     string
	catalogPath string
	groups      []string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "botcmd",
	Short: "Command registry and dispatcher for text-based bots",
	Long: `botcmd loads bot command definitions from a catalog file and matches
messages against them: it finds the invoked command, checks the sender's
groups, decomposes the arguments and renders help text.

Without a subcommand it starts the interactive console.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (.yaml, .toml or .jsonc); default merges user and project catalogs")
	rootCmd.PersistentFlags().StringSliceVarP(&groups, "groups", "g", nil, "groups of the sender, comma separated")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// env bundles what every subcommand needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	reg    *commands.Registry
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if cmd.Flags().Changed("groups") {
		cfg.Groups = groups
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, reg: reg}, nil
}

func loadRegistry(cfg *config.Config, logger *slog.Logger) (*commands.Registry, error) {
	var (
		file *catalog.File
		err  error
	)
	if cfg.CatalogPath != "" {
		file, err = catalog.Load(cfg.CatalogPath)
	} else {
		file, err = catalog.LoadAll()
	}
	if err != nil {
		return nil, err
	}

	cmds, err := catalog.Build(file)
	if err != nil {
		return nil, err
	}

	renderer, err := render.ByName(cfg.Renderer)
	if err != nil {
		return nil, err
	}

	reg, err := commands.New(cmds, commands.Options{Renderer: renderer, Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "commands", reg.Len(), "catalog", cfg.CatalogPath)
	return reg, nil
}

func (e *env) bot(withHistory bool) (*bot.Bot, error) {
	opts := bot.Options{
		HelpCommand: e.cfg.HelpCommand,
		Logger:      e.logger,
	}
	if withHistory && e.cfg.History.Enabled {
		sm, err := history.NewSessionManager(e.cfg.History.Dir)
		if err != nil {
			return nil, err
		}
		opts.Session = sm
	}
	return bot.New(e.reg, opts), nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

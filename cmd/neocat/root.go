package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vegasq/neocat/database"
	"github.com/vegasq/neocat/internal/config"
	"github.com/vegasq/neocat/internal/logging"
	"github.com/vegasq/neocat/reader"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "neocat",
		Short: "Explore near-Earth objects and their close approaches",
		Long: "neocat loads a NEO CSV file and a close-approach JSON document, links every\n" +
			"approach to its object and lets you inspect objects or query approaches.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .neocat.yaml)")
	flags.String("neofile", "data/neos.csv", "path to the NEO CSV file")
	flags.String("cadfile", "data/cad.json", "path to the close-approach JSON file")
	flags.BoolP("verbose", "v", false, "verbose output")
	for _, key := range []string{"neofile", "cadfile", "verbose"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(newInspectCmd(a), newQueryCmd(a))
	return root
}

// configure loads and validates configuration and sets up logging.
func (a *app) configure(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.Verbose)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Info("using config file", zap.String("path", used))
	}
	return nil
}

// loadDatabase reads both source files and links them.
func (a *app) loadDatabase() (*database.Database, error) {
	neos, err := reader.LoadNEOs(a.cfg.NEOFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.NEOFile, err)
	}
	a.log.Info("loaded near-Earth objects", zap.String("path", a.cfg.NEOFile), zap.Int("count", len(neos)))

	approaches, err := reader.LoadApproaches(a.cfg.CADFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", a.cfg.CADFile, err)
	}
	a.log.Info("loaded close approaches", zap.String("path", a.cfg.CADFile), zap.Int("count", len(approaches)))

	db := database.New(neos, approaches)
	if n := db.Unlinked(); n > 0 {
		a.log.Warn("close approaches without a matching object", zap.Int("count", n))
	}
	return db, nil
}

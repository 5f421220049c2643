package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maqamat-app/maqamat/internal/analytics"
	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/config"
	"github.com/maqamat-app/maqamat/internal/db"
	"github.com/maqamat-app/maqamat/internal/history"
	"github.com/maqamat-app/maqamat/internal/session"
)

// isTTY checks if the current environment has a TTY available
func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// app wires the collaborators the commands share: config, database-backed
// session store, history archive, and the analytics sink.
type app struct {
	cfg      config.Config
	db       *sql.DB
	sessions session.Store
	archive  *history.Store
	sink     analytics.Sink

	lang string // --lang flag, falls back to config
}

// open connects the database-backed collaborators on first use.
func (a *app) open(ctx context.Context) error {
	if a.db != nil {
		return nil
	}
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	dsn := a.cfg.DBDSN
	driver := db.Driver(a.cfg.DBDriver)
	if driver == db.DriverSQLite {
		dsn = a.cfg.SQLiteDSN()
	}
	dbh, err := db.Open(ctx, driver, dsn)
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	a.db = dbh
	a.sessions = session.NewSQLStore(dbh)
	a.archive = history.New(history.NewSQLKV(dbh), history.WithLimit(a.cfg.HistoryLimit))
	if a.cfg.EnableAnalytics {
		a.sink = analytics.NewEventLog(dbh)
	} else {
		a.sink = analytics.Nop{}
	}
	return nil
}

// variant resolves the catalog for the selected language, falling back to
// the default variant when the tag is unknown.
func (a *app) variant() catalog.Catalog {
	lang := a.lang
	if lang == "" {
		lang = a.cfg.Lang
	}
	if c, ok := catalog.Get(lang); ok {
		return c
	}
	return catalog.Default()
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: config.FromEnv()}

	rootCmd := &cobra.Command{
		Use:   "maqamat",
		Short: "The Nine Maqāmāt self-assessment",
		Long: `A self-assessment of 22 questions across 6 sections, mapping onto the
nine stations (maqāmāt) described in Sunan al-Muhtadīn by Imam al-Mawwāq.

For personal reflection only. All nine stations are within Islam; the tool
claims no statistical validity. Be honest — this works only with sincerity.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTTY() {
				return cmd.Help()
			}
			return a.runAssessment(cmd, false)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.lang, "lang", "l", "", "Catalog language tag")

	rootCmd.AddCommand(newResumeCommand(a))
	rootCmd.AddCommand(newHistoryCommand(a))
	rootCmd.AddCommand(newStationsCommand())
	rootCmd.AddCommand(newCatalogCommand(a))
	rootCmd.AddCommand(newShareCommand(a))

	return rootCmd
}

func newResumeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue the most recent unfinished assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTTY() {
				return fmt.Errorf("resume needs an interactive terminal")
			}
			return a.runAssessment(cmd, true)
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/username/autaxy/src/database"
	"github.com/username/autaxy/src/services"
)

func newStatementCmd() *cobra.Command {
	var settingsDB string

	cmd := &cobra.Command{
		Use:   "statement <file|->",
		Short: "Build a statement from a report using the stored business settings",
		Long: `Build a statement from a report. Business settings are read from the SQLite
database given by --settings-db; without it the default settings are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readReportInput(cmd, args[0])
			if err != nil {
				return err
			}

			var svc services.ReportService
			if settingsDB != "" {
				db, err := database.Open(settingsDB)
				if err != nil {
					return err
				}
				defer db.Close()
				store := services.NewSQLiteStore(db)
				svc, err = newReportServiceWithStores(store, store)
				if err != nil {
					return err
				}
			} else {
				svc, err = newOfflineReportService(services.NewMemoryStore())
				if err != nil {
					return err
				}
			}

			statement, err := svc.BuildStatement(cmd.Context(), text)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), statement)
		},
	}

	cmd.Flags().StringVar(&settingsDB, "settings-db", "", "SQLite database holding business settings")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/username/autaxy/src/models"
	"github.com/username/autaxy/src/parsers"
	"github.com/username/autaxy/src/processors"
	"github.com/username/autaxy/src/services"
	"github.com/username/autaxy/src/utils"
)

const (
	outputJSON   = "json"
	outputLedger = "ledger"
)

func newParseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a report and print the normalized result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputLedger {
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputJSON, outputLedger)
			}

			text, err := readReportInput(cmd, args[0])
			if err != nil {
				return err
			}

			svc, err := newOfflineReportService(services.NewMemoryStore())
			if err != nil {
				return err
			}
			report, err := svc.ParseReport(cmd.Context(), text)
			if err != nil {
				return err
			}

			if output == outputLedger {
				return writeLedger(cmd.OutOrStdout(), report)
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or ledger")
	return cmd
}

func newOfflineReportService(store *services.MemoryStore) (services.ReportService, error) {
	return newReportServiceWithStores(store, store)
}

func newReportServiceWithStores(imports services.ImportStore, settings services.SettingsStore) (services.ReportService, error) {
	parser, err := parsers.GetParser(parsers.DefaultSource)
	if err != nil {
		return nil, err
	}
	return services.NewReportService(parser, processors.NewStatementProcessor(), imports, settings, nil, nil), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLedger(w io.Writer, report *models.ReportData) error {
	fmt.Fprintf(w, "Report %s (%s) %s - %s\n", report.ReportID, report.Dialect, report.StartDate, report.EndDate)
	if report.VendorName != "" {
		fmt.Fprintf(w, "Vendor %s\n", report.VendorName)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tCountry\tSKU\tTitle\tQty\tCustomer price\tProceeds\t")
	for _, tx := range report.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s %s\t%s %s\t\n",
			tx.TransactionDate, tx.Country, tx.SKU, tx.Title,
			strconv.FormatInt(tx.Quantity, 10),
			utils.FormatAmountGerman(tx.CustomerPrice), tx.OriginalCurrency,
			utils.FormatAmountGerman(tx.PartnerShare), tx.Currency)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	countries := make([]string, 0, len(report.Summary.ByCountry))
	for c := range report.Summary.ByCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	for _, c := range countries {
		fmt.Fprintf(w, "  %s: %s EUR\n", c, utils.FormatAmountGerman(report.Summary.ByCountry[c]))
	}
	fmt.Fprintf(w, "Subtotal: %s EUR\n", utils.FormatAmountGerman(report.Summary.Subtotal))
	fmt.Fprintf(w, "Total:    %s EUR\n", utils.FormatAmountGerman(report.Summary.TotalPartnerShare))
	return nil
}

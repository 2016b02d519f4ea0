package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/wallet-dashboard/pkg/format"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "Lista las categorías del reporte o el ranking de una de ellas",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	_, categoryUC, closeCatalog, err := catalogUseCases(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()
	report := selectedReport(cfg)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 0 {
		list, err := categoryUC.List(report)
		if err != nil {
			return err
		}
		for _, name := range list.Categories {
			marker := ""
			if name == list.Default {
				marker = "(default)"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, marker)
		}
		return nil
	}

	rec, err := categoryUC.Get(report, args[0])
	if err != nil {
		return err
	}
	for _, e := range rec.Entities {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Rank, e.Entity, format.Float(e.Amount.InexactFloat64(), 2))
	}
	return nil
}

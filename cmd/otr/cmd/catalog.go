package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
)

var catalogDB string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and convert furniture catalogs",
	Long: `Commands for the furniture catalog. Catalogs live in s-expression files or
in a SQLite database; without either the built-in catalog is used.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the active catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cat *catalog.Catalog
		var err error
		if catalogDB != "" {
			cat, err = loadCatalogDB(catalogDB)
		} else {
			cat, err = loadCatalog()
		}
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Category\tName\tSize (cm)\tDescription\t")
		for _, c := range catalog.Categories {
			for _, t := range cat.ByCategory(c) {
				fmt.Fprintf(tw, "%s\t%s\t%gx%g\t%s\t\n", c, t.Name, t.DefaultSize.W, t.DefaultSize.H, t.Tooltip)
			}
		}
		return tw.Flush()
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <catalog-file>",
	Short: "Load an s-expression catalog into the SQLite store",
	Long: `Parse an s-expression catalog file and replace the contents of the SQLite
catalog with it.

Examples:
  otr catalog import furniture.cat --db catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		db, err := catalog.OpenSQLite(dbPath())
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
		defer cancel()
		if err := catalog.NewSQLStore(db).Save(ctx, cat); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d templates into %s\n", cat.Len(), dbPath())
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <catalog-file>",
	Short: "Write the SQLite catalog (or the built-in one) as an s-expression file",
	Long: `Write a catalog as an s-expression file. The source is the SQLite store
given by --db, or the built-in catalog when no database is set.

Examples:
  otr catalog export furniture.cat
  otr catalog export furniture.cat --db catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if path := dbPath(); path != "" {
			c, err := loadCatalogDB(path)
			if err != nil {
				return err
			}
			cat = c
		}
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := catalog.Write(f, cat); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d templates to %s\n", cat.Len(), args[0])
		return nil
	},
}

// dbPath prefers the --db flag over the configured database.
func dbPath() string {
	if catalogDB != "" {
		return catalogDB
	}
	return cfg.Catalog.DB
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	catalogCmd.PersistentFlags().StringVar(&catalogDB, "db", "", "SQLite catalog database")
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the device inventory file",
}

var (
	importSkipExisting bool
	listTag            string
	listStatus         string
	listQuery          string
	allocateReason     string
	lookupLimit        int
)

var inventoryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a YAML or JSON file",
	Long: `Reads a list of items, an {"inventory": [...]} document or a mapping keyed
by serial. Existing serials are overwritten unless --skip-existing is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var cmds commands.InventoryCommands
		if err := withCLI(&cmds); err != nil {
			return err
		}
		res, err := cmds.ImportFile(data, importSkipExisting)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d items from %s\n", res.Added, res.Read, args[0])
		return nil
	},
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var q queries.InventoryQueries
		if err := withCLI(&q); err != nil {
			return err
		}
		items := q.ListItems(queries.InventoryFilters{Query: listQuery, Tag: listTag, Status: inventory.Status(listStatus)})
		return printItems(cmd.OutOrStdout(), items)
	},
}

var inventoryLookupCmd = &cobra.Command{
	Use:   "lookup <query>...",
	Short: "Ranked search, best match first",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var q queries.InventoryQueries
		if err := withCLI(&q); err != nil {
			return err
		}
		matches, err := q.Lookup(strings.Join(args, " "), lookupLimit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tSERIAL\tMAKE\tMODEL\tSTATUS")
		for _, m := range matches {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.Score, m.Item.Serial, m.Item.Make, m.Item.Model, m.Item.Status)
		}
		return w.Flush()
	},
}

var inventorySummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Counts by status and model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var q queries.InventoryQueries
		if err := withCLI(&q); err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), q.Summary())
		return nil
	},
}

var inventoryAllocateCmd = &cobra.Command{
	Use:   "allocate <serial> <user>",
	Short: "Assign an available item to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cmds commands.InventoryCommands
		if err := withCLI(&cmds); err != nil {
			return err
		}
		item, err := cmds.Allocate(args[0], args[1], allocateReason)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s allocated to %s\n", item.Serial, *item.Owner)
		return nil
	},
}

var inventoryReleaseCmd = &cobra.Command{
	Use:   "release <serial>",
	Short: "Return an item to the available pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cmds commands.InventoryCommands
		if err := withCLI(&cmds); err != nil {
			return err
		}
		item, err := cmds.Release(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", item.Serial, item.Status)
		return nil
	},
}

func init() {
	inventoryImportCmd.Flags().BoolVar(&importSkipExisting, "skip-existing", false, "keep items whose serial already exists")
	inventoryListCmd.Flags().StringVar(&listTag, "tag", "", "only items with this tag")
	inventoryListCmd.Flags().StringVar(&listStatus, "status", "", "available or allocated")
	inventoryListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "substring search")
	inventoryAllocateCmd.Flags().StringVar(&allocateReason, "reason", "", "why the item is handed out")
	inventoryLookupCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 0, "maximum results (default from LOOKUP_MAX_RESULTS)")

	inventoryCmd.AddCommand(
		inventoryImportCmd,
		inventoryListCmd,
		inventoryLookupCmd,
		inventorySummaryCmd,
		inventoryAllocateCmd,
		inventoryReleaseCmd,
	)
}

func printItems(out io.Writer, items []inventory.Item) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIAL\tMAKE\tMODEL\tSTATUS\tOWNER\tLOCATION\tTAGS")
	for _, it := range items {
		owner := "-"
		if it.Owner != nil {
			owner = *it.Owner
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			it.Serial, it.Make, it.Model, it.Status, owner, it.Location, strings.Join(it.Tags, ","))
	}
	return w.Flush()
}

func printSummary(out io.Writer, s inventory.Summary) {
	fmt.Fprintf(out, "Total items: %d\n", s.Total)
	fmt.Fprintln(out, "By status:")
	for _, k := range sortedKeys(s.ByStatus) {
		fmt.Fprintf(out, "  %-12s %d\n", k, s.ByStatus[k])
	}
	fmt.Fprintln(out, "By model:")
	for _, k := range sortedKeys(s.ByModel) {
		fmt.Fprintf(out, "  %-24s %d\n", k, s.ByModel[k])
	}
	fmt.Fprintf(out, "Generated at %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

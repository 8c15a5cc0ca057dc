package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakay-labs/tiraj/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [number]",
	Short: "Show the pattern catalog, or which sets contain a number",
	Long: `Without an argument, list every pattern set with its day-paired numbers.
With a number, list only the sets whose day arrays contain it, using the
same reverse lookup 'analyze' uses to build its analysis sets.`,
	Example: `  tiraj catalog
  tiraj catalog 24`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	RootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return err
	}

	sets := cat.Sets()
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > 99 {
			return fmt.Errorf("number must be an integer in [0,99], got %q", args[0])
		}
		sets = cat.Lookup(n)
		if len(sets) == 0 {
			fmt.Printf("No pattern set contains %02d.\n", n)
			return nil
		}
	}

	for i, set := range sets {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(set.ID())
		for _, dn := range set.Days {
			nums := make([]string, len(dn.Numbers))
			for j, v := range dn.Numbers {
				nums[j] = fmt.Sprintf("%02d", v)
			}
			fmt.Printf("  %-9s (%s)  %s\n", dn.Day, dn.Day.English(), strings.Join(nums, " "))
		}
	}
	return nil
}

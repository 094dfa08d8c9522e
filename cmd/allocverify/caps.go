package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/alloc"
)

func init() {
	rootCmd.AddCommand(newCapsCmd())
}

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Print the optional operations each allocator offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := capabilityTable()
			if jsonOut {
				out := make(map[string]string, len(rows))
				for _, r := range rows {
					out[r.name] = r.caps.String()
				}
				return printJSON(out)
			}
			for _, r := range rows {
				fmt.Printf("%-28s %s\n", r.name, r.caps)
			}
			return nil
		},
	}
}

type capRow struct {
	name string
	caps alloc.CapSet
}

// capabilityTable lists the leaves by type and a few composites by value.
func capabilityTable() []capRow {
	heap := alloc.NewHeap()
	defer heap.Close()
	region := func() *alloc.Region { return alloc.NewRegion(make([]byte, 64)) }

	return []capRow{
		{"Null", alloc.CapabilitiesOf[alloc.Null]()},
		{"Region", alloc.CapabilitiesOf[*alloc.Region]()},
		{"Heap", alloc.CapabilitiesOf[*alloc.Heap]()},
		{"Fallback(Region, Heap)", alloc.Detect(alloc.NewFallback(region(), heap))},
		{"Fallback(Region, Region)", alloc.Detect(alloc.NewFallback(region(), region()))},
		{"Fallback(Heap, Region)", alloc.Detect(alloc.NewFallback(heap, region()))},
		{"Fallback(Region, Null)", alloc.Detect(alloc.NewFallback(region(), alloc.Null{}))},
		{"Segregator(Region, Heap)", alloc.Detect(alloc.NewSegregator(32, region(), heap))},
		{"Segregator(Null, Null)", alloc.Detect(alloc.NewSegregator(32, alloc.Null{}, alloc.Null{}))},
	}
}

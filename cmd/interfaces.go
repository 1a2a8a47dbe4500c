package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"tftp-router-flasher/internal/adapter/infrastructure/sysinfo"

	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List network interfaces usable with --interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaces, err := sysinfo.NewInterfaceAdapter().Interfaces(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMAC\tADDRESSES\tFLAGS")
		for _, iface := range ifaces {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				iface.Name,
				orDash(iface.HardwareAddr),
				orDash(strings.Join(iface.Addrs, ",")),
				orDash(strings.Join(iface.Flags, ",")))
		}
		return w.Flush()
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tftp-router-flasher",
	Short: "tftp-router-flasher uploads firmware to a router in rescue mode over TFTP",
	Long: `tftp-router-flasher pushes a firmware image to a router whose bootloader is
waiting for a TFTP upload. If the router does not answer at --hostname, it can
sweep 192.168.1.2-192.168.1.25 on the chosen interface, with your consent,
looking for an address from which 192.168.1.1 is reachable.

Reconfiguring the interface requires root (CAP_NET_ADMIN).`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runFlash,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

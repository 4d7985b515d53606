package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/audio"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List audio capture devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := audio.ListDevices()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(devices) == 0 {
			fmt.Fprintln(out, "No capture devices found.")
			return nil
		}
		for _, d := range devices {
			fmt.Fprintln(out, d.String())
		}
		fmt.Fprintln(out, "\nSet audio.device (or ECHOZ_AUDIO_DEVICE) to part of a name to pick one.")
		return nil
	},
}

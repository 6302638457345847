package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/herutama7782/monobmp/bmp"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [FILE.bmp]",
	Short: "Show dimensions and pixel counts of a 1-bit BMP",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("bmp filename is required")
		}
		if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("input file '%s' does not exist", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		buffer, width, height, err := bmp.Decode(data)
		if err != nil {
			return err
		}

		var white int
		for _, v := range buffer {
			if v == 255 {
				white++
			}
		}

		fmt.Printf("%v: %vx%v, %v bytes, %v white / %v black pixels\n",
			args[0], width, height, len(data), white, len(buffer)-white)
		return nil
	},
	SilenceUsage: true,
}

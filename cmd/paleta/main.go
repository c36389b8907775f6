// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paleta",
	Short: "Paleta - color palette swatches for Frutificando Vidas",
	Long: `Paleta builds labeled color swatch images from a palette of one to
five colors.

The web editor keeps the whole palette in its address, so a palette can be
bookmarked or shared as a plain link. The same swatches can be rendered
from the command line.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

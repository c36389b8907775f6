// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/paleta/internal/config"
	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/palette"
	"github.com/thatcatcamp/paleta/internal/swatch"
	"github.com/thatcatcamp/paleta/internal/themes"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
	"github.com/thatcatcamp/paleta/internal/view"
)

var (
	paletteColors []string
	paletteLink   string
	palettePreset string
	outputDir     string
	shareBase     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a palette swatch to a PNG file",
	Long: `Render the labeled swatch for a palette and save it as a PNG.

The palette comes from --color (repeatable), a palette --link copied from
the web editor, or a --preset name.`,
	Example: `  paleta render --color "#3B82F6" --color "#F59E0B" -o ./out
  paleta render --link "https://paleta.example.org/?color1=%23FF0000"
  paleta render --preset indigo`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		v, err := paletteView()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		img, err := v.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		path, err := export.SaveFile(outputDir, exportFilename(), img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving swatch: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Saved %s\n", path)
		fmt.Printf("Colors: %s\n", strings.Join(v.Colors(), ", "))
	},
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the share link for a palette",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		v, err := paletteView()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		base := shareBase
		if base == "" {
			base = config.GetString("server.base_url")
		}
		if base == "" {
			fmt.Fprintln(os.Stderr, "Error: no base URL; pass --base or set server.base_url")
			os.Exit(1)
		}

		fmt.Println(urlcodec.Link(base, v.Colors()))
		fmt.Println(v.ShareLink(base, shareConfig()))
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in starter palettes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPalettes() {
			fmt.Printf("%-14s %s\n", p.Name, strings.Join(p.Colors, " "))
		}
	},
}

// paletteView builds a view from the palette flags. Precedence is
// --color, then --link, then --preset, then the default palette.
func paletteView() (*view.View, error) {
	renderer := swatch.NewPNGRenderer(swatchOptions())

	switch {
	case len(paletteColors) > 0:
		if len(paletteColors) > palette.MaxColors {
			return nil, fmt.Errorf("at most %d colors are allowed, got %d", palette.MaxColors, len(paletteColors))
		}
		v := view.New(urlcodec.NewMemoryAddress(""), renderer)
		v.Replace(paletteColors)
		return v, nil

	case paletteLink != "":
		query := paletteLink
		if i := strings.Index(query, "?"); i >= 0 {
			query = query[i+1:]
		}
		if i := strings.Index(query, "#"); i >= 0 {
			query = query[:i]
		}
		v := view.New(urlcodec.NewMemoryAddress(query), renderer)
		if !v.Load() {
			return nil, fmt.Errorf("link has no color parameters")
		}
		return v, nil

	case palettePreset != "":
		preset := themes.GetPalette(palettePreset)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q (see: paleta presets)", palettePreset)
		}
		v := view.New(urlcodec.NewMemoryAddress(""), renderer)
		v.Replace(preset.Colors)
		return v, nil
	}

	return view.New(urlcodec.NewMemoryAddress(""), renderer), nil
}

func addPaletteFlags(cmd *cobra.Command) {
	// StringArray keeps rgb(r, g, b) values intact
	cmd.Flags().StringArrayVarP(&paletteColors, "color", "c", nil, "palette color, repeat for up to five")
	cmd.Flags().StringVar(&paletteLink, "link", "", "palette link from the web editor")
	cmd.Flags().StringVar(&palettePreset, "preset", "", "built-in palette name")
}

func init() {
	addPaletteFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory to save the swatch in")

	addPaletteFlags(shareCmd)
	shareCmd.Flags().StringVar(&shareBase, "base", "", "public address of the palette page")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(presetsCmd)
}

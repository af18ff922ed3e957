package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/button/termview"
	"github.com/networkteam/uikit/loader"
	"github.com/networkteam/uikit/theme"
)

type previewFlags struct {
	label        string
	leadingIcon  string
	trailingIcon string
	dark         bool
	loading      bool
	disabled     bool
}

var (
	previewSizes    = []button.Size{button.Large, button.Medium, button.Small}
	previewVariants = []button.Variant{button.Contained, button.Elevated, button.Outlined, button.Text}
)

func newPreviewCmd() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print every button size and variant to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			props := termview.Props{
				Label:        flags.label,
				LeadingIcon:  flags.leadingIcon,
				TrailingIcon: flags.trailingIcon,
				Loading:      flags.loading,
				Disabled:     flags.disabled,
			}
			for _, name := range []string{props.LeadingIcon, props.TrailingIcon} {
				if name == "" {
					continue
				}
				if _, ok := termview.Glyphs[name]; !ok {
					return fmt.Errorf("unknown icon %q", name)
				}
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), preview(props, flags.dark))
			return err
		},
	}

	cmd.Flags().StringVar(&flags.label, "label", "Button", "Button label")
	cmd.Flags().StringVar(&flags.leadingIcon, "leading-icon", "", "Leading icon name")
	cmd.Flags().StringVar(&flags.trailingIcon, "trailing-icon", "", "Trailing icon name")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Render for a dark background")
	cmd.Flags().BoolVar(&flags.loading, "loading", false, "Render the loading state")
	cmd.Flags().BoolVar(&flags.disabled, "disabled", false, "Render the disabled state")

	return cmd
}

// preview renders the grid of variants and sizes. Loading buttons advance a shared spinner so
// successive rows show successive frames.
func preview(props termview.Props, dark bool) string {
	t := theme.Default()
	ticker := loader.NewTicker()

	var sb strings.Builder
	for _, variant := range previewVariants {
		fmt.Fprintf(&sb, "%s\n", variant)
		for _, size := range previewSizes {
			props.Size = size
			props.Variant = variant
			if props.Loading {
				props.Spinner = ticker.Tick()
			}
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
				fmt.Sprintf("  %-7s ", size),
				termview.Render(props, t, dark),
			))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptcanvas/promptcanvas/pkg/template"
)

// templatesCommand creates the templates command for listing layout templates.
func (c *CLI) templatesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available layout templates",
		Long: `List available layout templates.

Shows the built-in templates and, when configured or passed via --dir, the
templates found in a user templates directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = c.Config.TemplatesDir
			}
			return c.runTemplates(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "additional templates directory to scan")

	return cmd
}

// runTemplates prints the built-in and user template listings.
func (c *CLI) runTemplates(dir string) error {
	builtins, err := template.Builtins()
	if err != nil {
		return fmt.Errorf("list built-in templates: %w", err)
	}

	fmt.Println(StyleTitle.Render("Built-in templates"))
	printTemplateInfos(builtins)

	if dir != "" {
		users, err := template.ScanDir(dir)
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}
		printNewline()
		fmt.Println(StyleTitle.Render("User templates") + " " + StyleDim.Render(dir))
		if len(users) == 0 {
			printDetail("none found")
		}
		printTemplateInfos(users)
	}

	printNewline()
	printNextStep("Compute", "promptcanvas compute <template>")
	return nil
}

// printTemplateInfos prints one line per template.
func printTemplateInfos(infos []template.Info) {
	for _, info := range infos {
		layoutType := strings.TrimSuffix(strings.TrimPrefix(info.LayoutType, "dynamic_"), "_layout")
		printDetail("%-22s %-18s %d zones", info.Name, layoutType, info.Zones)
	}
}

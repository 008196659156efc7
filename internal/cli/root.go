package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scrgen/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "scrgen generates OSGi service component descriptors",
		Long: `scrgen is a build step that scans Java sources for component annotations and
generates Declarative Services descriptors (serviceComponents.xml, metatype.xml).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.specVersionsCommand())
	root.AddCommand(c.generatorsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

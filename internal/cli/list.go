package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scrgen/pkg/generator"
	"github.com/matzehuels/scrgen/pkg/options"
)

// specVersionDescriptions documents each known spec version.
var specVersionDescriptions = map[options.SpecVersion]string{
	options.SpecVersion10:      "Declarative Services 1.0 (OSGi R4.0)",
	options.SpecVersion11:      "Declarative Services 1.1 (OSGi R4.2)",
	options.SpecVersion11Felix: "Declarative Services 1.1 with Apache Felix extensions",
	options.SpecVersion12:      "Declarative Services 1.2 (OSGi R4.3)",
}

func specVersionNames() []string {
	var names []string
	for _, v := range options.SpecVersions() {
		names = append(names, v.String())
	}
	return names
}

// specVersionsCommand lists the accepted --spec-version values.
func (c *CLI) specVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spec-versions",
		Short: "List the supported descriptor spec versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range options.SpecVersions() {
				printKeyValue(out, v.String(), specVersionDescriptions[v])
			}
			printDetail(out, "Omit --spec-version to detect the version from the annotations in use.")
			return nil
		},
	}
}

// generatorsCommand lists the registered generator backends.
func (c *CLI) generatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the available descriptor generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range c.Generators.Names() {
				if name == generator.DryRunName {
					printInfo(out, "%s %s", StyleHighlight.Render(name), StyleDim.Render("(default)"))
					continue
				}
				printInfo(out, "%s", name)
			}
			return nil
		},
	}
}

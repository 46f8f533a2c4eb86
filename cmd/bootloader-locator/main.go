// Command bootloader-locator prints the manifest path of the package that
// provides a named dependency of the current project, along with the
// feature flags activated for it during dependency resolution.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	bootlocator "github.com/phil-opp/bootloader-locator"
	"github.com/phil-opp/bootloader-locator/manifest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		manifestPath string
		cargoBin     string
		showFeatures bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "bootloader-locator [dependency-name]",
		Short: "Locate a dependency's manifest via the project dependency graph",
		Long: `bootloader-locator resolves the package that provides a named dependency
of the current project (default: bootloader) and prints the path of its
Cargo.toml. With --features it also prints the feature flags that were
activated for the dependency when the graph was resolved.

The project manifest is found by walking parent directories from the
working directory, unless --manifest-path is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dependency := "bootloader"
			if len(args) == 1 {
				dependency = args[0]
			}

			opts := bootlocator.Options{
				ManifestPath: manifestPath,
				Cargo:        cargoBin,
			}

			if verbose {
				reportProject(cmd, opts)
			}

			dep, err := bootlocator.Locate(cmd.Context(), dependency, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), dep.ManifestPath)
			if showFeatures {
				for _, feature := range dep.Features {
					fmt.Fprintln(cmd.OutOrStdout(), feature)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest-path", "", "path to the project Cargo.toml (default: walk up from the working directory)")
	cmd.Flags().StringVar(&cargoBin, "cargo", "", "cargo binary to invoke (default: $CARGO, then cargo on PATH)")
	cmd.Flags().BoolVar(&showFeatures, "features", false, "also print the activated features, one per line")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report the project the lookup runs against on stderr")

	return cmd
}

// reportProject prints the caller project's identity on stderr. Failures
// here are not fatal: the lookup itself will surface them with a proper
// error kind.
func reportProject(cmd *cobra.Command, opts bootlocator.Options) {
	path := opts.ManifestPath
	if path == "" {
		located, err := manifest.Locate(opts.Dir)
		if err != nil {
			return
		}
		path = located
	}
	m, err := manifest.Read(path)
	if err != nil || m.Package.Name == "" {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "resolving for %s v%s (%s)\n", m.Package.Name, m.Package.Version, path)
}

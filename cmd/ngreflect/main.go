package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/scyaay/angular/internal/cli"
	"github.com/scyaay/angular/internal/reflector"
)

func main() {
	var (
		workspaceFlag = flag.String("workspace", "", "Package root scanned to answer companion-existence queries")
		extFlag       = flag.String("ext", reflector.DefaultOutputExtension, "Companion-file extension")
		verboseFlag   = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag     = flag.Bool("quiet", false, "Only show errors")

		noComponentsFlag = flag.Bool("no-injectable-components", false, "Do not register factories for @Component classes without @Injectable")
		noDirectivesFlag = flag.Bool("no-injectable-directives", false, "Do not register factories for @Directive classes without @Injectable")
		noPipesFlag      = flag.Bool("no-injectable-pipes", false, "Do not register factories for @Pipe classes without @Injectable")
		noRouterFlag     = flag.Bool("no-router-annotations", false, "Do not capture legacy @RouteConfig annotations on components")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <library.yaml...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reflectable Metadata Resolver\n")
		fmt.Fprintf(os.Stderr, "Resolves which declarations of each library need runtime registration and\n")
		fmt.Fprintf(os.Stderr, "which generated companion files its own companion must link.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  library.yaml    One or more resolved-library fixture files\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lib.yaml                         # Resolve one library, no workspace\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workspace . lib/*.yaml         # Answer linking queries from the package tree\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --no-router-annotations lib.yaml # Skip legacy router capture\n", os.Args[0])
	}

	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one library fixture is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	level := cli.LevelNormal
	if *quietFlag {
		level = cli.LevelQuiet
	} else if *verboseFlag {
		level = cli.LevelVerbose
	}
	reporter := cli.NewReporter(level)
	reporter.Section("Reflectable Metadata Resolver")

	cfg := reflector.NewConfig()
	cfg.OutputExtension = *extFlag
	cfg.RecordComponentsAsInjectables = !*noComponentsFlag
	cfg.RecordDirectivesAsInjectables = !*noDirectivesFlag
	cfg.RecordPipesAsInjectables = !*noPipesFlag
	cfg.RecordRouterAnnotationsForComponents = !*noRouterFlag

	if *workspaceFlag != "" {
		workspace, err := cli.OpenWorkspace(*workspaceFlag, *extFlag)
		if err != nil {
			reporter.Error(err)
			os.Exit(1)
		}
		reporter.Verbose("Scanned workspace %s (package %s)", *workspaceFlag, workspace.Name())
		cfg.HasInput = workspace.HasInput
		cfg.IsLibrary = workspace.IsLibrary
	}

	resolver := reflector.NewResolver(cfg)
	loader := cli.NewFixtureLoader()
	ctx := context.Background()

	for _, path := range args {
		lib, err := loader.LoadLibrary(path)
		if err != nil {
			reporter.Error(err)
			os.Exit(1)
		}
		output, err := resolver.Resolve(ctx, lib)
		if err != nil {
			reporter.Error(err)
			os.Exit(1)
		}
		reporter.PrintOutput(lib.Name, output)
	}

	reporter.Success("Resolved %d librar%s", len(args), plural(len(args)))
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

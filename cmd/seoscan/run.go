package main

import (
	"fmt"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/analyze"
)

// runSingle analyzes one page and stores its record.
func runSingle(deps *Dependencies, url string) error {
	fmt.Fprintf(deps.Stdout, "Analyzing %s\n", url)

	name, err := deps.Runner.RunOne(deps.Ctx, url)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", url, err)
	}

	fmt.Fprintf(deps.Stdout, "Saved record %s\n", name)
	return nil
}

// runBatch analyzes every URL named by source. A batch with any failed URL
// is an error once all URLs have been tried.
func runBatch(deps *Dependencies, source string) error {
	urls, err := deps.Source.Discover(deps.Ctx, source)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return seoscan.Errorf(seoscan.ENOTFOUND, "no URLs found in %s", source)
	}

	fmt.Fprintf(deps.Stdout, "Analyzing %d URLs\n", len(urls))

	result, err := deps.Runner.Run(deps.Ctx, urls, func(e analyze.ProgressEvent) {
		switch e.Type {
		case analyze.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s -> %s\n", e.Completed, e.Total, e.URL, e.Name)
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s failed: %s\n", e.Completed, e.Total, e.URL, errorText(e.Error))
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSuccessful: %d/%d\n", len(result.Saved), result.Total)
	if result.OK() {
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Failed URLs:")
	for _, f := range result.Failed {
		fmt.Fprintf(deps.Stdout, "  %s\n", f.URL)
	}
	return fmt.Errorf("%d of %d URLs failed", len(result.Failed), result.Total)
}

// runCompile writes the spreadsheet over every stored record.
func runCompile(deps *Dependencies) error {
	result, err := deps.Compiler.Compile(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Compiled %d records into %s\n", result.Records, result.Path)
	return nil
}

// Command devroast fetches developer profile data from the command line.
//
// Usage:
//
//	devroast torvalds
//	devroast https://github.com/torvalds
//	devroast -leetcode neetcode
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codeGROOVE-dev/devroast/pkg/devroast"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	useLeetCode := flag.Bool("leetcode", false, "fetch LeetCode statistics instead of a GitHub profile")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: devroast [options] <username-or-url>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nSources:")
		fmt.Fprintln(os.Stderr, "  - GitHub (default, accepts a username or profile URL)")
		fmt.Fprintln(os.Stderr, "  - LeetCode (-leetcode, accepts a username)")
		os.Exit(1)
	}

	input := flag.Arg(0)

	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx := context.Background()
	opts := []devroast.Option{devroast.WithLogger(logger)}

	var rec any
	var err error
	if *useLeetCode {
		rec, err = devroast.LeetCodeProfileData(ctx, input, opts...)
	} else {
		rec, err = devroast.GitHubProfileData(ctx, input, opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := outputJSON(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

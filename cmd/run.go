package cmd

import (
	"context"
	"fmt"
)

// Run executes securepass with args and returns the exit code
func Run(ctx context.Context, args []string, env Env) int {
	opts, err := ParseArgs(args)
	if err != nil {
		return HandleError(env.Stderr, err)
	}

	switch {
	case opts.Help:
		printUsage(env.Stdout)
		return 0
	case opts.Version:
		fmt.Fprintf(env.Stdout, "securepass %s\n", Version)
		return 0
	case opts.Completion != "":
		if err := Completion(env.Stdout, opts.Completion); err != nil {
			return HandleError(env.Stderr, err)
		}
		return 0
	}

	if err := Generate(ctx, opts, env); err != nil {
		return HandleError(env.Stderr, err)
	}
	return 0
}

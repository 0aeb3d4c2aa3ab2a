package main

import "flag"

type cliArgs struct {
	config     string
	script     string
	json       bool
	verbose    bool
	accumulate bool
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.StringVar(&args.config, "config", "", "Path to a YAML config file")
	fs.StringVar(&args.script, "script", "", "Script file to run (default: read commands from stdin)")
	fs.BoolVar(&args.json, "json", false, "Print the final state as JSON")
	fs.BoolVar(&args.verbose, "v", false, "Log every step at debug level")
	fs.BoolVar(&args.accumulate, "all-errors", false, "Report every invalid script line instead of the first")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	return args, nil
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sporadisk/prayercal/calendar"
	"github.com/sporadisk/prayercal/config"
)

const helpMsg = `
Valid flags:
  --config
    Path to a yaml config file. Defaults to .prayercal.yaml in the working directory.
  --output
    Path of the CSV file to write. Overrides the configured output path.
  --watch
    Keep running and regenerate the CSV whenever the config file changes.
    Requires --config.

`

func main() {
	validInput, err := run()
	if err != nil {
		if !validInput {
			fmt.Print(helpMsg)
		}

		fmt.Printf("Error: %s\n", err.Error())

		os.Exit(1)
		return
	}
}

func run() (validInput bool, err error) {
	confPath := flag.String("config", "", "Path to config file")
	outPath := flag.String("output", "", "Path of the CSV file to write")
	watch := flag.Bool("watch", false, "Regenerate when the config file changes")
	flag.Parse()

	if *confPath != "" {
		fmt.Printf("Using config file: %s\n", *confPath)
	}

	conf, err := config.Load(*confPath)
	if err != nil {
		return false, fmt.Errorf("config.Load: %w", err)
	}

	builder := &calendar.Builder{
		Conf:           conf,
		OutputOverride: *outPath,
		MonthPause:     3 * time.Second,
	}

	if *watch {
		if *confPath == "" {
			return false, fmt.Errorf("--watch requires --config.")
		}

		err = builder.Watch(*confPath)
		if err != nil {
			return true, fmt.Errorf("calendar.Watch: %w", err)
		}
		return true, nil
	}

	err = builder.Build()
	if err != nil {
		return true, fmt.Errorf("calendar.Build: %w", err)
	}

	return true, nil
}

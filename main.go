package main

import (
	"flag"
	"fmt"
	"os"

	"surveyd/internal/di"
	"surveyd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "surveyd: %s\n", err)
		os.Exit(1)
	}
}

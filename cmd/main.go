package main

import (
	"flag"
	"fmt"
	"os"

	"tapebox/internal/driver"
	"tapebox/internal/logger"
	"tapebox/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the tapebox machine.
func main() {
	options := driver.Driver{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode (debug logs, final tape report)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.IntVar(&options.TapeSize, "s", 0, "Tape size in frames (default from config, 64 otherwise)")
	flag.StringVar(&options.ConfigFile, "c", "", "CUE config file")
	flag.StringVar(&options.TraceFile, "t", "", "Write a JSON trace of dispatched instructions to this file")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [program]\n", os.Args[0])
		fmt.Println("Without a program file an interactive prompt is started; enter q to quit.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Run(); err != nil {
		log.Fatal("Execution failed", "error", err)
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"skyedit/internal/cli"
	"skyedit/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			log.Close()
			fmt.Fprintf(os.Stderr, "skyedit crashed. See the log file for details.\n")
			os.Exit(1)
		}
	}()

	// Log fatal signals before exiting
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGABRT, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Error("SIGNAL RECEIVED", "signal", sig.String())
		log.Close()
		os.Exit(1)
	}()

	cli.Version, cli.Commit, cli.Date = version, commit, date
	code := cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
	log.Close()
	os.Exit(code)
}

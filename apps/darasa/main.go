package main

import (
	"log"
	"os"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/services/logger"
)

func main() {
	os.Exit(run())
}

// run returns the exit code once the logger has been flushed.
func run() int {
	conf, err := core.NewConfig()
	if err != nil {
		log.Printf("%+v", err)
		return 1
	}
	logger := logsvc.New("DARASA : ", conf)
	defer func() { _ = logsvc.Close(logger) }()

	cli := commandLine{
		conf:   conf,
		logger: logger,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("darasa failed", err)
		}
		return 1
	}
	return 0
}

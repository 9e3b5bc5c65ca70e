package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/classroom"
	"github.com/trezcool/darasa/services/notify"
	"github.com/trezcool/darasa/storage/database/inmem"
)

var (
	errHelp = errors.New("help provided")

	commands      = []string{"demo", "run"}
	minSuggestion = .6
)

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  demo [-stats]            - run the sample classroom: Ada teaches Intro, Bob submits HW1")
	_, _ = fmt.Fprintln(cli.out, "  run -file FILE [-stats]  - run a classroom scenario described in a YAML/JSON/TOML file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	demoCmd := flag.NewFlagSet("demo", flag.ContinueOnError)
	demoCmd.SetOutput(cli.out)
	demoStats := demoCmd.Bool("stats", false, "Print notification counters at the end.")

	runCmd := flag.NewFlagSet("run", flag.ContinueOnError)
	runCmd.SetOutput(cli.out)
	runFile := runCmd.String("file", "", "The scenario file.")
	runStats := runCmd.Bool("stats", false, "Print notification counters at the end.")

	switch args[1] {
	case "demo":
		if err := demoCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.execute(demoScenario(), *demoStats)
	case "run":
		if err := runCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *runFile == "" {
			runCmd.Usage()
			return errHelp
		}
		sc, err := loadScenario(*runFile)
		if err != nil {
			return err
		}
		return cli.execute(sc, *runStats)
	default:
		if s := suggest(args[1]); s != "" {
			_, _ = fmt.Fprintf(cli.out, "unknown command %q, did you mean %q?\n", args[1], s)
		}
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newService() (*classroom.Service, *prometheus.Registry, error) {
	db, err := inmemdb.Open()
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	notifier, err := notifysvc.NewMetered(notifysvc.New(cli.out, cli.conf, cli.logger), reg)
	if err != nil {
		return nil, nil, err
	}

	var opts []classroom.Option
	if cli.conf.StrictEvaluation {
		opts = append(opts, classroom.WithStrictEvaluation(cli.conf.MaxMarks))
	}
	return classroom.NewService(inmemdb.NewRepository(db), notifier, cli.logger, opts...), reg, nil
}

// suggest returns the known command closest to cmd, if close enough.
func suggest(cmd string) string {
	var (
		best      string
		bestRatio float64
	)
	for _, c := range commands {
		ratio := difflib.NewMatcher(strings.Split(cmd, ""), strings.Split(c, "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio < minSuggestion {
		return ""
	}
	return best
}

func printStats(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			_, _ = fmt.Fprintf(w, "%s{%s} %v\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}

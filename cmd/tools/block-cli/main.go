package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "подробный вывод")
	noColor := flag.Bool("no-color", false, "отключить цвет")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	for _, cmd := range newCommands(os.Stdout) {
		subcommands.Register(cmd, "blocks")
	}
	subcommands.ImportantFlag("debug")

	flag.Parse()
	setupOutput(*debug, *noColor)

	os.Exit(int(subcommands.Execute(context.Background())))
}

func setupOutput(debug, noColor bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	disableColor(noColor)
}

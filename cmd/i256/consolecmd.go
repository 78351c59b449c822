package main

import (
	"github.com/Aurorachain/go-i256/cmd/utils"
	"github.com/Aurorachain/go-i256/console"
	"gopkg.in/urfave/cli.v1"
)

var consoleCommand = cli.Command{
	Action:   utils.MigrateFlags(localConsole),
	Name:     "console",
	Usage:    "Start an interactive evaluation console",
	Flags:    appFlags,
	Category: "CONSOLE COMMANDS",
	Description: `
The console reads one operation per line, prints its result and keeps a
command history in the data directory. Type "help" to list the operations
and "exit" to leave.`,
}

// localConsole starts an interactive console on top of the configured evaluator.
func localConsole(ctx *cli.Context) error {
	cfg := setup(ctx)

	config := console.Config{
		DataDir:   cfg.Console.DataDir,
		Prompt:    cfg.Console.Prompt,
		Evaluator: makeEvaluator(cfg),
	}
	console, err := console.New(config)
	if err != nil {
		utils.Fatalf("Failed to start the console: %v", err)
	}
	defer console.Stop()

	console.Welcome()
	console.Interactive()

	return nil
}

// i256 is the command line interface to the signed 256-bit integer library.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Aurorachain/go-i256/cmd/utils"
	"github.com/Aurorachain/go-i256/console"
	"github.com/Aurorachain/go-i256/internal/calc"
	"github.com/Aurorachain/go-i256/log"
	"github.com/Aurorachain/go-i256/metrics"
	"go.uber.org/zap"
	"gopkg.in/urfave/cli.v1"
)

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""

	app = utils.NewApp(gitCommit, "checked signed 256-bit integer arithmetic")

	appFlags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.VerbosityFlag,
		utils.FormatFlag,
		utils.DataDirFlag,
		utils.MetricsEnabledFlag,
	}

	evalCommand = cli.Command{
		Action:    utils.MigrateFlags(evaluate),
		Name:      "eval",
		Usage:     "Evaluate a single operation",
		ArgsUsage: "<op> <operand...>",
		Flags:     appFlags,
		Category:  "ARITHMETIC COMMANDS",
		Description: `
Evaluates one operation and prints the result. Operands are signed decimals
(e.g. -42) or raw two's complement words (e.g. 0xff..ff). Run "i256 eval help"
for the list of operations.`,
		// Operands like -7 must not be taken for flags.
		SkipArgReorder: true,
	}
)

func init() {
	app.Action = localConsole
	app.HideVersion = true
	app.Copyright = "Copyright 2018 The go-i256 Authors"
	app.Commands = []cli.Command{
		evalCommand,
		consoleCommand,
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = append(app.Flags, appFlags...)

	app.After = func(ctx *cli.Context) error {
		if metrics.Enabled {
			metrics.Write(os.Stderr)
		}
		log.Sync()
		console.Stdin.Close()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup applies the logging and metrics sections of the configuration.
func setup(ctx *cli.Context) i256Config {
	cfg := makeConfig(ctx)
	log.SetLevel(cfg.Log.Level)
	if cfg.Metrics.Enabled {
		metrics.Enable()
	}
	log.LDebug("Configuration loaded", zap.String("format", cfg.Calc.Format), zap.String("datadir", cfg.Console.DataDir))
	return cfg
}

func evaluate(ctx *cli.Context) error {
	eval := makeEvaluator(setup(ctx))

	args := ctx.Args()
	if len(args) == 0 {
		return errors.New(`missing operation, see "i256 eval help"`)
	}
	if args[0] == "help" {
		for _, op := range calc.Ops() {
			fmt.Println(op)
		}
		return nil
	}
	out, err := eval.Eval(args[0], args[1:]...)
	if err != nil {
		return fmt.Errorf("error(%s): %v", calc.Kind(err), err)
	}
	fmt.Println(out)
	return nil
}

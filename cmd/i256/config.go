package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/Aurorachain/go-i256/cmd/utils"
	"github.com/Aurorachain/go-i256/console"
	"github.com/Aurorachain/go-i256/internal/calc"
	"github.com/Aurorachain/go-i256/log"
	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      utils.MigrateFlags(dumpConfig),
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       appFlags,
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type consoleConfig struct {
	DataDir string
	Prompt  string
}

type logConfig struct {
	Level string
}

type metricsConfig struct {
	Enabled bool
}

type i256Config struct {
	Calc    calc.Config
	Console consoleConfig
	Log     logConfig
	Metrics metricsConfig
}

func defaultConfig() i256Config {
	return i256Config{
		Calc: calc.DefaultConfig,
		Console: consoleConfig{
			DataDir: utils.DefaultDataDir(),
			Prompt:  console.DefaultPrompt,
		},
		Log: logConfig{Level: utils.VerbosityFlag.Value},
	}
}

func loadConfig(file string, cfg *i256Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig layers defaults, the config file and explicitly set flags.
func makeConfig(ctx *cli.Context) i256Config {
	cfg := defaultConfig()

	if file := ctx.GlobalString(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			utils.Fatalf("%v", err)
		}
	}
	if ctx.GlobalIsSet(utils.FormatFlag.Name) {
		cfg.Calc.Format = ctx.GlobalString(utils.FormatFlag.Name)
	}
	if ctx.GlobalIsSet(utils.DataDirFlag.Name) {
		cfg.Console.DataDir = utils.MakeDataDir(ctx)
	}
	if ctx.GlobalIsSet(utils.VerbosityFlag.Name) {
		cfg.Log.Level = ctx.GlobalString(utils.VerbosityFlag.Name)
	}
	if ctx.GlobalIsSet(utils.MetricsEnabledFlag.Name) {
		cfg.Metrics.Enabled = ctx.GlobalBool(utils.MetricsEnabledFlag.Name)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		utils.Fatalf("Unknown log level %q", cfg.Log.Level)
	}
	return cfg
}

func makeEvaluator(cfg i256Config) *calc.Evaluator {
	eval, err := calc.New(cfg.Calc)
	if err != nil {
		utils.Fatalf("Invalid calc configuration: %v", err)
	}
	return eval
}

func dumpConfig(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	io.WriteString(os.Stdout, "# i256 configuration\n\n")
	os.Stdout.Write(out)
	return nil
}

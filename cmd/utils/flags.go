package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Aurorachain/go-i256/internal/calc"
	"gopkg.in/urfave/cli.v1"
)

var (
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: debug, info, warn, error",
		Value: "info",
	}
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: `Result format: "dec" for signed decimal, "hex" for the raw word`,
		Value: calc.DefaultConfig.Format,
	}
	DataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "Directory for the console history",
		Value: DefaultDataDir(),
	}
	MetricsEnabledFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Write operation counters and timers to stderr on exit",
	}
)

// DefaultDataDir is the default data directory to use for the console history.
func DefaultDataDir() string {
	home := homeDir()
	if home == "" {
		return ""
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "I256")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "I256")
	}
	return filepath.Join(home, ".i256")
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// expandPath expands a leading ~ to the home directory and cleans the path.
func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := homeDir(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(p))
}

// MakeDataDir retrieves the currently requested data directory, terminating
// if none (or the empty string) is specified.
func MakeDataDir(ctx *cli.Context) string {
	if path := ctx.GlobalString(DataDirFlag.Name); path != "" {
		return expandPath(path)
	}
	Fatalf("Cannot determine default data directory, please set manually (--datadir)")
	return ""
}

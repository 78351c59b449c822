package console

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Aurorachain/go-i256/internal/calc"
	"github.com/Aurorachain/go-i256/metrics"
	"github.com/mattn/go-colorable"
	"github.com/peterh/liner"
)

var (
	onlyWhitespace = regexp.MustCompile(`^\s*$`)
	exit           = regexp.MustCompile(`^\s*exit\s*;*\s*$`)
)

const HistoryFile = "history"

const DefaultPrompt = "> "

type Config struct {
	DataDir   string
	Prompt    string
	Prompter  UserPrompter
	Printer   io.Writer
	Evaluator *calc.Evaluator
}

type Console struct {
	eval     *calc.Evaluator
	prompt   string
	prompter UserPrompter
	histPath string
	history  []string
	printer  io.Writer
}

func New(config Config) (*Console, error) {
	if config.Prompter == nil {
		config.Prompter = Stdin
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Printer == nil {
		config.Printer = colorable.NewColorableStdout()
	}
	if config.Evaluator == nil {
		eval, err := calc.New(calc.DefaultConfig)
		if err != nil {
			return nil, err
		}
		config.Evaluator = eval
	}
	console := &Console{
		eval:     config.Evaluator,
		prompt:   config.Prompt,
		prompter: config.Prompter,
		printer:  config.Printer,
		histPath: filepath.Join(config.DataDir, HistoryFile),
	}
	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		return nil, err
	}
	if content, err := ioutil.ReadFile(console.histPath); err != nil {
		console.prompter.SetHistory(nil)
	} else {
		console.history = strings.Split(string(content), "\n")
		console.prompter.SetHistory(console.history)
	}
	console.prompter.SetWordCompleter(console.AutoCompleteInput)
	return console, nil
}

func (c *Console) clearHistory() {
	c.history = nil
	c.prompter.ClearHistory()
	if err := os.Remove(c.histPath); err != nil {
		fmt.Fprintln(c.printer, "can't delete history file:", err)
	} else {
		fmt.Fprintln(c.printer, "history file deleted")
	}
}

// AutoCompleteInput completes operation names in the first word of the line.
func (c *Console) AutoCompleteInput(line string, pos int) (string, []string, string) {
	if len(line) == 0 || pos == 0 || strings.ContainsAny(line[:pos], " \t") {
		return "", nil, ""
	}
	var matches []string
	for _, op := range append(calc.Ops(), builtins...) {
		if strings.HasPrefix(op, line[:pos]) {
			matches = append(matches, op+" ")
		}
	}
	return "", matches, line[pos:]
}

var builtins = []string{"clearhistory", "exit", "help"}

func (c *Console) Welcome() {
	fmt.Fprintf(c.printer, "Welcome to the signed 256-bit integer console!\n\n")
	fmt.Fprintf(c.printer, " format: %s\n", c.eval.Config().Format)
	fmt.Fprintln(c.printer, "  usage: <op> <operand...>, \"help\" lists operations")
	fmt.Fprintln(c.printer)
}

// Evaluate runs a single statement and prints its result or failure.
func (c *Console) Evaluate(statement string) error {
	switch strings.TrimSpace(statement) {
	case "help":
		fmt.Fprintln(c.printer, strings.Join(calc.Ops(), " "))
		return nil
	case "clearhistory":
		if ok, _ := c.prompter.PromptConfirm("Delete console history?"); ok {
			c.clearHistory()
		}
		return nil
	}
	metrics.NewMeter("console/statements").Mark(1)
	out, err := c.eval.EvalLine(statement)
	if err != nil {
		fmt.Fprintf(c.printer, "error(%s): %v\n", calc.Kind(err), err)
		return err
	}
	fmt.Fprintln(c.printer, out)
	return nil
}

func (c *Console) Interactive() {
	scheduler := make(chan string)

	go func() {
		for {
			line, err := c.prompter.PromptInput(<-scheduler)
			if err != nil {
				if err == liner.ErrPromptAborted {
					scheduler <- ""
					continue
				}
				close(scheduler)
				return
			}
			scheduler <- line
		}
	}()

	abort := make(chan os.Signal, 1)
	signal.Notify(abort, os.Interrupt)
	defer signal.Stop(abort)

	for {
		scheduler <- c.prompt
		select {
		case <-abort:
			fmt.Fprintln(c.printer, "caught interrupt, exiting")
			return

		case line, ok := <-scheduler:
			if !ok || exit.MatchString(line) {
				return
			}
			if onlyWhitespace.MatchString(line) {
				continue
			}
			if command := strings.TrimSpace(line); len(c.history) == 0 || command != c.history[len(c.history)-1] {
				c.history = append(c.history, command)
				c.prompter.AppendHistory(command)
			}
			c.Evaluate(line)
		}
	}
}

// Stop persists the command history.
func (c *Console) Stop() error {
	if err := ioutil.WriteFile(c.histPath, []byte(strings.Join(c.history, "\n")), 0600); err != nil {
		return err
	}
	return os.Chmod(c.histPath, 0600)
}

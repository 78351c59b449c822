package console

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Aurorachain/go-i256/internal/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookedPrompter struct {
	inputs  []string
	confirm bool
	history []string
}

func (p *hookedPrompter) PromptInput(prompt string) (string, error) {
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	line := p.inputs[0]
	p.inputs = p.inputs[1:]
	return line, nil
}

func (p *hookedPrompter) PromptConfirm(prompt string) (bool, error) {
	return p.confirm, nil
}

func (p *hookedPrompter) SetHistory(history []string) { p.history = history }
func (p *hookedPrompter) AppendHistory(command string) { p.history = append(p.history, command) }
func (p *hookedPrompter) ClearHistory() { p.history = nil }
func (p *hookedPrompter) SetWordCompleter(cmp WordCompleter) {}

type tester struct {
	workspace string
	console   *Console
	input     *hookedPrompter
	output    *bytes.Buffer
}

func newTester(t *testing.T, format string, inputs ...string) *tester {
	workspace, err := ioutil.TempDir("", "console-tester-")
	if err != nil {
		t.Fatalf("failed to create temporary datadir: %v", err)
	}
	eval, err := calc.New(calc.Config{Format: format})
	require.NoError(t, err)

	prompter := &hookedPrompter{inputs: inputs}
	printer := new(bytes.Buffer)

	console, err := New(Config{
		DataDir:   workspace,
		Prompter:  prompter,
		Printer:   printer,
		Evaluator: eval,
	})
	if err != nil {
		t.Fatalf("failed to create console: %v", err)
	}
	return &tester{
		workspace: workspace,
		console:   console,
		input:     prompter,
		output:    printer,
	}
}

func (env *tester) Close(t *testing.T) {
	if err := env.console.Stop(); err != nil {
		t.Errorf("failed to stop console: %v", err)
	}
	os.RemoveAll(env.workspace)
}

func TestWelcome(t *testing.T) {
	tester := newTester(t, calc.FormatHex)
	defer tester.Close(t)

	tester.console.Welcome()

	output := tester.output.String()
	if want := "Welcome"; !strings.Contains(output, want) {
		t.Fatalf("console output missing welcome message: have\n%s\nwant also %s", output, want)
	}
	if want := "format: hex"; !strings.Contains(output, want) {
		t.Fatalf("console output missing format: have\n%s\nwant also %s", output, want)
	}
}

func TestEvaluate(t *testing.T) {
	tester := newTester(t, calc.FormatDec)
	defer tester.Close(t)

	require.NoError(t, tester.console.Evaluate("divup -7 2"))
	assert.Equal(t, "-4\n", tester.output.String())

	tester.output.Reset()
	err := tester.console.Evaluate("mod 1 0")
	assert.Error(t, err)
	assert.Contains(t, tester.output.String(), "error(divzero)")

	tester.output.Reset()
	require.NoError(t, tester.console.Evaluate("help"))
	assert.Contains(t, tester.output.String(), "divdown")
}

func TestInteractive(t *testing.T) {
	tester := newTester(t, calc.FormatDec, "add 5 -3", "   ", "add 5 -3", "cmp -10 -3", "exit", "mul 2 2")
	defer tester.Close(t)

	tester.console.Interactive()

	assert.Equal(t, "2\n2\nless\n", tester.output.String())
	assert.Equal(t, []string{"add 5 -3", "cmp -10 -3"}, tester.console.history)
	assert.Equal(t, []string{"mul 2 2"}, tester.input.inputs)
}

func TestInteractiveEOF(t *testing.T) {
	tester := newTester(t, calc.FormatDec, "sub -5 -3")
	defer tester.Close(t)

	tester.console.Interactive()
	assert.Equal(t, "-2\n", tester.output.String())
}

func TestHistoryPersistence(t *testing.T) {
	tester := newTester(t, calc.FormatDec, "flip 1", "abs -1")
	tester.console.Interactive()
	require.NoError(t, tester.console.Stop())

	content, err := ioutil.ReadFile(filepath.Join(tester.workspace, HistoryFile))
	require.NoError(t, err)
	assert.Equal(t, "flip 1\nabs -1", string(content))

	reopened, err := New(Config{
		DataDir:  tester.workspace,
		Prompter: tester.input,
		Printer:  tester.output,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"flip 1", "abs -1"}, reopened.history)

	tester.input.confirm = true
	tester.output.Reset()
	require.NoError(t, reopened.Evaluate("clearhistory"))
	assert.Contains(t, tester.output.String(), "history file deleted")
	assert.Nil(t, reopened.history)
	_, err = os.Stat(filepath.Join(tester.workspace, HistoryFile))
	assert.True(t, os.IsNotExist(err))

	os.RemoveAll(tester.workspace)
}

func TestAutoComplete(t *testing.T) {
	tester := newTester(t, calc.FormatDec)
	defer tester.Close(t)

	_, matches, _ := tester.console.AutoCompleteInput("div", 3)
	assert.Equal(t, []string{"divdown ", "divup "}, matches)

	_, matches, _ = tester.console.AutoCompleteInput("ex", 2)
	assert.Equal(t, []string{"exit "}, matches)

	_, matches, _ = tester.console.AutoCompleteInput("add 1", 5)
	assert.Nil(t, matches)

	_, matches, _ = tester.console.AutoCompleteInput("", 0)
	assert.Nil(t, matches)
}

func TestNewFailsOnBadDataDir(t *testing.T) {
	file, err := ioutil.TempFile("", "console-file-")
	require.NoError(t, err)
	file.Close()
	defer os.Remove(file.Name())

	_, err = New(Config{DataDir: filepath.Join(file.Name(), "sub"), Prompter: &hookedPrompter{}, Printer: ioutil.Discard})
	assert.Error(t, err)
}

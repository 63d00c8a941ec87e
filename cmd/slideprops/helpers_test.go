package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/slideprops/internal/prompt"
)

// scriptedPrompter answers prompts from a fixed script.
type scriptedPrompter struct {
	answers []string
	closed  bool
}

func (s *scriptedPrompter) Prompt(string) (string, error) {
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Close() error {
	s.closed = true
	return nil
}

func testDependencies(fs afero.Fs, logs io.Writer, answers ...string) (dependencies, *scriptedPrompter) {
	prompter := &scriptedPrompter{answers: answers}
	return dependencies{
		fs:          fs,
		logWriter:   logs,
		getwd:       func() (string, error) { return "/work", nil },
		newPrompter: func() prompt.Prompter { return prompter },
		colorize:    false,
	}, prompter
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, deps dependencies, args ...string) (string, error) {
	t.Helper()

	cmd := buildRootCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

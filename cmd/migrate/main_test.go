package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"up", "down", "steps", "version", "force"} {
		require.Contains(t, names, want)
	}
}

func TestStepsCmd_RequiresOneArg(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"steps"})
	root.SetOut(nopWriter{})
	root.SetErr(nopWriter{})

	require.Error(t, root.Execute())
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

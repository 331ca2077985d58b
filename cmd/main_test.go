package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HelpIgnoresBadConfig(t *testing.T) {
	t.Setenv("ENV_CHECK", "1")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("HTTP_PORT", "eighty")
	logger, _ := test.NewNullLogger()

	for _, args := range [][]string{{"--help"}, {"serve", "--help"}} {
		root := newRootCommand(context.Background(), logger)
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)

		require.NoError(t, root.Execute(), "args %v", args)
		assert.Contains(t, out.String(), "serve")
	}
}

func TestRootCommand_ServeRejectsBadConfig(t *testing.T) {
	t.Setenv("ENV_CHECK", "1")
	t.Setenv("LOG_LEVEL", "loud")
	logger, _ := test.NewNullLogger()

	root := newRootCommand(context.Background(), logger)
	root.SetArgs([]string{"serve"})

	err := root.Execute()
	assert.ErrorContains(t, err, "LOG_LEVEL")
}

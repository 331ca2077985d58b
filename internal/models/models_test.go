package models

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceClass(t *testing.T) {
	c, err := ParseServiceClass("N")
	require.NoError(t, err)
	assert.Equal(t, Normal, c)

	c, err = ParseServiceClass("P")
	require.NoError(t, err)
	assert.Equal(t, Priority, c)

	for _, raw := range []string{"", "n", "X", "NP"} {
		_, err := ParseServiceClass(raw)
		assert.True(t, errors.Is(err, ErrInvalidServiceClass), "raw=%q", raw)
	}
}

func TestEntryView(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	e := Entry{Name: "Ana", Class: Priority, Position: 2, ArrivedAt: at}

	assert.Equal(t, EntryView{Position: 2, Name: "Ana", ArrivedAt: at}, e.View())
}

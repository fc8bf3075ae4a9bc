package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	assert.True(t, Static{Answer: true}.Confirm("anything"))
	assert.False(t, Static{Answer: false}.Confirm("anything"))
}

func TestTerminal_ReadsAnswer(t *testing.T) {
	cases := map[string]bool{
		"y\n":    true,
		"Y\n":    true,
		"yes\n":  true,
		"YES\n":  true,
		"n\n":    false,
		"no\n":   false,
		"\n":     false,
		"what\n": false,
	}

	for input, want := range cases {
		var out bytes.Buffer
		term := &Terminal{In: strings.NewReader(input), Out: &out}
		assert.Equal(t, want, term.Confirm("Delete?"), "input %q", input)
		assert.Contains(t, out.String(), "Delete?")
	}
}

func TestTerminal_EOFDeclines(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{In: strings.NewReader(""), Out: &out}
	assert.False(t, term.Confirm("Delete?"))
}

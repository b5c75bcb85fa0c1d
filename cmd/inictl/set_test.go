package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCommand(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		addr      string
		value     string
		typ       string
		spaces    bool
		multiKey  bool
		noMulti   bool
		want      string
		wantError bool
	}{
		{
			name: "replace", input: "[Combat]\ndamage=10\n",
			addr: "Combat|damage", value: "20", typ: "int",
			want: "[Combat]\ndamage=20\n",
		},
		{
			name: "new section", input: "[Combat]\ndamage=10\n",
			addr: "Magic|mana", value: "0.5", typ: "float",
			want: "[Combat]\ndamage=10\n\n[Magic]\nmana=0.5\n",
		},
		{
			name: "spaces", input: "[S]\na=1\n",
			addr: "S|b", value: "two words", typ: "string", spaces: true,
			want: "[S]\na = 1\nb = two words\n",
		},
		{
			name: "multikey appends", input: "[Loot]\nitem=sword\n",
			addr: "Loot|item", value: "shield", typ: "string", multiKey: true,
			want: "[Loot]\nitem=sword\nitem=shield\n",
		},
		{
			name: "no multiline flattens", input: "[S]\n",
			addr: "S|text", value: "line one\nline two", typ: "string", noMulti: true,
			want: "[S]\ntext=line one line two\n",
		},
		{
			name: "bad int", input: "[S]\n",
			addr: "S|n", value: "ten", typ: "int", wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			setType = tt.typ
			setSpaces = tt.spaces
			setMultiKey = tt.multiKey
			setNoMultiLine = tt.noMulti
			quiet = true

			file := writeTestFile(t, "f.ini", tt.input)
			_, err := captureOutput(t, func() error {
				return runSet([]string{file, tt.addr, tt.value})
			})
			if tt.wantError {
				require.Error(t, err)
				data, readErr := os.ReadFile(file)
				require.NoError(t, readErr)
				assert.Equal(t, tt.input, string(data), "file must be untouched")
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestSetCommand_DryRun(t *testing.T) {
	resetFlags()
	setDryRun = true
	file := writeTestFile(t, "f.ini", "[Combat]\ndamage=10\n")

	output, err := captureOutput(t, func() error {
		return runSet([]string{file, "Combat|damage", "99"})
	})
	require.NoError(t, err)
	assert.Equal(t, "[Combat]\ndamage=99\n", output)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "[Combat]\ndamage=10\n", string(data))
}

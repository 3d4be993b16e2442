package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTaskArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantTask   string
		wantParams []string
	}{
		{name: "no arguments", args: nil, wantTask: "", wantParams: nil},
		{name: "task only", args: []string{"install"}, wantTask: "install", wantParams: []string{}},
		{
			name:       "task with parameters",
			args:       []string{"add", "PKG=requests"},
			wantTask:   "add",
			wantParams: []string{"PKG=requests"},
		},
		{
			name:       "parameters without task select the default",
			args:       []string{"PKG=requests"},
			wantTask:   "",
			wantParams: []string{"PKG=requests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, params := splitTaskArgs(tt.args)
			assert.Equal(t, tt.wantTask, task)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"PKG=requests", "PYTHON_VERSION=3.12"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"PKG":            "requests",
		"PYTHON_VERSION": "3.12",
	}, params)
}

func TestParseParams_EmptyValueKept(t *testing.T) {
	params, err := parseParams([]string{"PKG="})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PKG": ""}, params)
}

func TestParseParams_Malformed(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no equals sign", args: []string{"requests"}},
		{name: "empty key", args: []string{"=requests"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseParams(tt.args)
			assert.Error(t, err)
		})
	}
}

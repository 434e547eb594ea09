package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgsMovesPositionsBehindSeparator(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "position only",
			in:   []string{"edit", "-1"},
			want: []string{"edit", "--", "-1"},
		},
		{
			name: "position with flags",
			in:   []string{"edit", "-1", "--end", "17:00"},
			want: []string{"edit", "--end", "17:00", "--", "-1"},
		},
		{
			name: "position with new task name",
			in:   []string{"edit", "-2", "Renamed"},
			want: []string{"edit", "Renamed", "--", "-2"},
		},
		{
			name: "no position untouched",
			in:   []string{"edit", "3f2a", "--start", "9:00"},
			want: []string{"edit", "3f2a", "--start", "9:00"},
		},
		{
			name: "explicit separator left alone",
			in:   []string{"edit", "--", "-1"},
			want: []string{"edit", "--", "-1"},
		},
		{
			name: "other commands untouched",
			in:   []string{"log", "--week"},
			want: []string{"log", "--week"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.in))
		})
	}
}

func TestClassifyEditArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantReference string
		wantTaskName  string
	}{
		{name: "empty", args: nil},
		{name: "position", args: []string{"-1"}, wantReference: "-1"},
		{name: "hex id prefix", args: []string{"3f2a"}, wantReference: "3f2a"},
		{name: "task name", args: []string{"New name"}, wantTaskName: "New name"},
		{name: "reference and name", args: []string{"3f2a", "New name"}, wantReference: "3f2a", wantTaskName: "New name"},
		{name: "position after name", args: []string{"New name", "-2"}, wantReference: "-2", wantTaskName: "New name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reference, taskName, err := classifyEditArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReference, reference)
			assert.Equal(t, tt.wantTaskName, taskName)
		})
	}
}

func TestClassifyEditArgsRejectsExtraArgs(t *testing.T) {
	_, _, err := classifyEditArgs([]string{"3f2a", "name", "extra"})
	require.Error(t, err)

	_, _, err = classifyEditArgs([]string{"-1", "ref", "name"})
	require.Error(t, err)
}

package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-p", "20", "-u", "http://localhost"},
			allowedFlags: []string{"-p"},
			want:         []string{"-p", "20"},
		},
		{
			name:         "equals form",
			args:         []string{"-r=500ms", "-p", "20"},
			allowedFlags: []string{"-r"},
			want:         []string{"-r=500ms"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag at the end without value",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-p", "5"},
			allowedFlags: []string{"-c", "-p"},
			want:         []string{"-c", "-p", "5"},
		},
		{
			name:         "order preserved",
			args:         []string{"-u", "http://a", "-c", "cfg.json", "-t", "3"},
			allowedFlags: []string{"-c", "-t", "-u"},
			want:         []string{"-u", "http://a", "-c", "cfg.json", "-t", "3"},
		},
		{
			name:         "empty",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFilePath([]string{"-c", "a.json", "-p", "10"}))
	assert.Equal(t, "b.json", ConfigFilePath([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigFilePath([]string{"-config=c.json"}))
	assert.Equal(t, "", ConfigFilePath([]string{"-p", "10"}))
	assert.Equal(t, "", ConfigFilePath(nil))
}

package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNewConfigCmd_Subcommands(t *testing.T) {
	cmd := newConfigCmd()

	if cmd.Use != "config" {
		t.Errorf("expected use 'config', got '%s'", cmd.Use)
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range []string{"set", "get", "list"} {
		if !subcommands[expected] {
			t.Errorf("expected subcommand '%s' not found", expected)
		}
	}
}

func TestConfigSetCmd_UnknownKey(t *testing.T) {
	cmd := newConfigSetCmd()
	cmd.SetArgs([]string{"no-such-key", "value"})

	err := cmd.Execute()
	if err == nil {
		t.Error("expected error for unknown configuration key")
	}
}

func TestNormalizeConfigKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"default-region", ConfigKeyDefaultRegion},
		{"default-backend", ConfigKeyDefaultBackend},
		{"default_region", "default_region"},
		{"something-else", "something-else"},
	}

	for _, tt := range tests {
		if got := normalizeConfigKey(tt.in); got != tt.want {
			t.Errorf("normalizeConfigKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveRegion_FlagWins(t *testing.T) {
	t.Setenv(EnvDefaultRegion, "eu-central-1")
	viper.Set(ConfigKeyDefaultRegion, "ap-southeast-2")
	defer viper.Set(ConfigKeyDefaultRegion, "")

	if got := resolveRegion("us-west-2"); got != "us-west-2" {
		t.Errorf("expected flag value to win, got '%s'", got)
	}
}

func TestResolveRegion_EnvBeatsConfig(t *testing.T) {
	t.Setenv(EnvDefaultRegion, "eu-central-1")
	viper.Set(ConfigKeyDefaultRegion, "ap-southeast-2")
	defer viper.Set(ConfigKeyDefaultRegion, "")

	if got := resolveRegion(""); got != "eu-central-1" {
		t.Errorf("expected env value to win over config, got '%s'", got)
	}
}

func TestResolveRegion_ConfigFallback(t *testing.T) {
	t.Setenv(EnvDefaultRegion, "")
	viper.Set(ConfigKeyDefaultRegion, "ap-southeast-2")
	defer viper.Set(ConfigKeyDefaultRegion, "")

	if got := resolveRegion(""); got != "ap-southeast-2" {
		t.Errorf("expected config value, got '%s'", got)
	}
}

func TestResolveRegion_EmptyWhenUnset(t *testing.T) {
	t.Setenv(EnvDefaultRegion, "")
	viper.Set(ConfigKeyDefaultRegion, "")

	if got := resolveRegion(""); got != "" {
		t.Errorf("expected empty region when nothing is set, got '%s'", got)
	}
}

package event

import "testing"

func TestWireName(t *testing.T) {
	tests := []struct {
		name   string
		plugin PluginID
		event  string
		want   string
	}{
		{"host passthrough", Host, "greeting", "greeting"},
		{"plugin prefix", PluginID("demo"), "greeting", "demo:greeting"},
		{"same name different plugins", PluginID("other"), "greeting", "other:greeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WireName(tt.plugin, tt.event); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPluginID_IsHost(t *testing.T) {
	if !Host.IsHost() {
		t.Error("expected zero value to be the host")
	}
	if PluginID("demo").IsHost() {
		t.Error("expected named plugin not to be the host")
	}
}

package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (UFRAME_*). Environment values override the config file but are
// overridden by explicitly set flags (via the changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("defs", os.Getenv("UFRAME_DEFS"), &cfg.DefsPath)
	s.setString("log-level", os.Getenv("UFRAME_LOG_LEVEL"), &cfg.LogLevel)
}

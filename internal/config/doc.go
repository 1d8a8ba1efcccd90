// Package config manages user-level settings stored at ~/.newmodule/config.yaml
// and NEWMODULE_* environment variables. The settings override the literal
// tokens and directory names the scaffolder uses, so the tool keeps working
// when the reference sample or the repository layout changes.
package config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/branding"
	"github.com/Esri/arcgis-maps-sdk-kotlin-samples/tools/newmodule/internal/scaffold"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyRepoRoot         = "repo_root"
	KeySamplesDir       = "samples_dir"
	KeyReferenceSample  = "reference_sample"
	KeyReferencePackage = "reference_package"
	KeyPackageParent    = "package_parent"
	KeyToolsDir         = "tools_dir"
	KeyToolDir          = "tool_dir"
	KeyCopyrightToken   = "copyright_token"
	KeyAppNameElement   = "app_name_element"
	KeyCategory         = "category"
	KeyMinGradleVersion = "min_gradle_version"
)

// DefaultMinGradleVersion is the oldest Gradle wrapper doctor accepts.
const DefaultMinGradleVersion = "8.0"

var defaults = map[string]string{
	KeyRepoRoot:         "",
	KeySamplesDir:       "",
	KeyReferenceSample:  scaffold.DefaultReferenceSample,
	KeyReferencePackage: scaffold.DefaultReferencePackage,
	KeyPackageParent:    scaffold.DefaultPackageParent,
	KeyToolsDir:         scaffold.DefaultToolsDir,
	KeyToolDir:          scaffold.DefaultToolDir,
	KeyCopyrightToken:   scaffold.DefaultCopyrightToken,
	KeyAppNameElement:   scaffold.DefaultAppNameElement,
	KeyCategory:         "",
	KeyMinGradleVersion: DefaultMinGradleVersion,
}

// Dir returns the path to the config directory (~/.newmodule/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	LoadFile(FilePath())
}

// LoadFile is Load with an explicit config file.
func LoadFile(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns every known configuration key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsKnown reports whether key is a configuration key.
func IsKnown(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}
	return SetInFile(FilePath(), key, value)
}

// SetInFile is Set against an explicit config file.
func SetInFile(configFile, key, value string) error {
	viper.Set(key, value)

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Layout builds the scaffold layout from the loaded settings.
func Layout() scaffold.Layout {
	l := scaffold.DefaultLayout()
	l.SamplesDir = Get(KeySamplesDir)
	l.ReferenceSample = Get(KeyReferenceSample)
	l.ReferencePackage = Get(KeyReferencePackage)
	l.PackageParent = Get(KeyPackageParent)
	l.ToolsDir = Get(KeyToolsDir)
	l.ToolDir = Get(KeyToolDir)
	l.CopyrightToken = Get(KeyCopyrightToken)
	l.AppNameElement = Get(KeyAppNameElement)
	return l
}

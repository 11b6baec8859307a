package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	homeDirName = ".ktbridge"
	fileName    = "config"
	fileType    = "yaml"
	envPrefix   = "KTBRIDGE"
)

// Settings keys.
const (
	// KeyOutputDir overrides the external build-output root (relative
	// keys resolve against the project root).
	KeyOutputDir = "output.dir"
	// KeyLinksDir overrides the links root, default Packages/Skip.
	KeyLinksDir = "links.dir"
)

// Dir returns the path to the ktbridge config directory (~/.ktbridge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file (~/.ktbridge/config.yaml).
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
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
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

// OutputRoot resolves the external build-output root for a project: the
// output.dir setting when present, else .build/ktbridge/<name>.output
// under the project root (the peer build system's per-project convention).
func OutputRoot(projectRoot, projectName string) string {
	if dir := Get(KeyOutputDir); dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(projectRoot, dir)
	}
	return filepath.Join(projectRoot, ".build", "ktbridge", projectName+".output")
}

// LinksRoot resolves the links root for a project: the links.dir setting
// when present, else Packages/Skip under the project root.
func LinksRoot(projectRoot string) string {
	if dir := Get(KeyLinksDir); dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(projectRoot, dir)
	}
	return filepath.Join(projectRoot, "Packages", "Skip")
}

// Package config manages user settings stored at ~/.ktbridge/config.yaml,
// read through Viper with KTBRIDGE_* environment overrides. It also
// resolves the two configurable project paths: the external build-output
// root and the links root.
package config

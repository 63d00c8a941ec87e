// Package constants contains names shared across slideprops packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "slideprops"

	// LogFilename is the default log file name for slideprops.
	LogFilename = "slideprops.log"

	// ConfigFilename is the config file looked up when --config is not given.
	ConfigFilename = "slideprops.yml"
)

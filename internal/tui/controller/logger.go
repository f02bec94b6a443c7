package controller

import (
	"launchapp/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogInfo logs an informational message from the window.
func LogInfo(format string, a ...interface{}) {
	logging.Info(controllerSubsystem, format, a...)
}

// LogDebug logs a debug message from the window.
func LogDebug(format string, a ...interface{}) {
	logging.Debug(controllerSubsystem, format, a...)
}

// LogError logs an error from the window.
func LogError(err error, format string, a ...interface{}) {
	logging.Error(controllerSubsystem, err, format, a...)
}

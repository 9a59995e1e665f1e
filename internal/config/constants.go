package config

import "time"

// Tick cadence.
const (
	// PollInterval drives the reminder and alarm checks.
	PollInterval = 30 * time.Second
	// TimerInterval drives the countdown and stopwatch display.
	TimerInterval = time.Second
)

// Database/application settings.
const (
	AppName        = "daykeeper"
	DBFileName     = "daykeeper.db"
	ConfigFileName = "config.yaml"
)

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns EnvPrefix+key parsed as uint64, or defaultVal if
// unset or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns EnvPrefix+key parsed as int, or defaultVal if unset or
// invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns EnvPrefix+key parsed as bool, or defaultVal if unset.
// Accepts "true", "1", "yes" and "false", "0", "no" (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns EnvPrefix+key parsed by time.ParseDuration, or
// defaultVal if unset or invalid.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// applyEnvOverrides fills every option not given as a flag from its
// environment variable:
//
//	FIBBENCH_ALGO, FIBBENCH_WORKERS, FIBBENCH_REPS, FIBBENCH_STEP,
//	FIBBENCH_START, FIBBENCH_MAX_TIME, FIBBENCH_EPS, FIBBENCH_METRICS_FILE,
//	FIBBENCH_QUIET, FIBBENCH_NO_COLOR, FIBBENCH_LOG_LEVEL
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "algo") {
		config.Algo = getEnvString("ALGO", config.Algo)
	}
	if !isFlagSet(fs, "workers") {
		config.Workers = getEnvInt("WORKERS", config.Workers)
	}
	if !isFlagSet(fs, "reps") {
		config.Repetitions = getEnvInt("REPS", config.Repetitions)
	}
	if !isFlagSet(fs, "step") {
		config.Step = getEnvUint64("STEP", config.Step)
	}
	if !isFlagSet(fs, "start") {
		config.Start = getEnvUint64("START", config.Start)
	}
	if !isFlagSet(fs, "max-time") {
		config.MaxTime = getEnvDuration("MAX_TIME", config.MaxTime)
	}
	if !isFlagSet(fs, "eps") {
		config.Epsilon = getEnvDuration("EPS", config.Epsilon)
	}
	if !isFlagSet(fs, "metrics-file") {
		config.MetricsFile = getEnvString("METRICS_FILE", config.MetricsFile)
	}
	if !isFlagSet(fs, "quiet", "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "log-level") {
		config.LogLevel = getEnvString("LOG_LEVEL", config.LogLevel)
	}
}

package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetBoolFromEnv leaves val untouched when the variable is unset or not a
// valid bool.
func TrySetBoolFromEnv(envName string, val *bool) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return
	}

	*val = parsed
}

func TrySetDurationFromEnv(envName string, val *time.Duration) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	parsed, err := time.ParseDuration(envVal)
	if err != nil {
		return
	}

	*val = parsed
}

// TrySetListFromEnv splits a comma-separated value, dropping empty items.
func TrySetListFromEnv(envName string, val *[]string) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	items := make([]string, 0)
	for _, item := range strings.Split(envVal, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	*val = items
}

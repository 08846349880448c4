package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"kickitup/internal/flagx"
)

var errBadDuration = errors.New("duration must be a string like \"3s\" or integer nanoseconds")

// duration lets JSON express intervals either as strings like "3s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	return errBadDuration
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards.
type jsonConfig struct {
	BaseURL         string   `json:"base_url"`
	DatabasePath    string   `json:"database_path"`
	RequestTimeout  duration `json:"request_timeout"`
	NotificationTTL duration `json:"notification_ttl"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is given it is a no-op. Fields absent from the
// file keep their current values.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/ragctl/internal/flagx"
	"github.com/dmitrijs2005/ragctl/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL             *string         `json:"base_url"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	ChatTimeout         *timex.Duration `json:"chat_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        *string         `json:"database_path"`
	DemoLogin           *bool           `json:"demo_login"`
	DemoUsername        *string         `json:"demo_username"`
	DemoPassword        *string         `json:"demo_password"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Absent file path means no JSON stage. Fields left
// out of the file keep their earlier values. Panics on read or unmarshal
// errors (a broken config file should stop startup).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.ChatTimeout != nil {
		cfg.ChatTimeout = time.Duration(jc.ChatTimeout.Duration)
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.DemoLogin != nil {
		cfg.DemoLogin = *jc.DemoLogin
	}
	if jc.DemoUsername != nil {
		cfg.DemoUsername = *jc.DemoUsername
	}
	if jc.DemoPassword != nil {
		cfg.DemoPassword = *jc.DemoPassword
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	} `json:"auth,omitempty"`

	Remote struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		LogPath string `json:"log_path"`
		Label   string `json:"label"`
		Policy  string `json:"policy"`
	} `json:"sync,omitempty"`

	Storage struct {
		LedgerPath  string `json:"ledger_path"`
		SessionPath string `json:"session_path"`
		HistoryDSN  string `json:"history_dsn"`
		BackupDir   string `json:"backup_dir"`
	} `json:"storage,omitempty"`

	Watch struct {
		Enabled  bool     `json:"enabled"`
		Debounce Duration `json:"debounce"`
		Interval Duration `json:"interval"`
		Backoff  Duration `json:"backoff"`
	} `json:"watch,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			User: jsonCfg.Auth.User,
			Pass: jsonCfg.Auth.Pass,
		},
		Remote: Remote{
			HTTPAddress:    jsonCfg.Remote.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			LogPath: jsonCfg.Sync.LogPath,
			Label:   jsonCfg.Sync.Label,
			Policy:  jsonCfg.Sync.Policy,
		},
		Storage: Storage{
			LedgerPath:  jsonCfg.Storage.LedgerPath,
			SessionPath: jsonCfg.Storage.SessionPath,
			HistoryDSN:  jsonCfg.Storage.HistoryDSN,
			BackupDir:   jsonCfg.Storage.BackupDir,
		},
		Watch: Watch{
			Enabled:  jsonCfg.Watch.Enabled,
			Debounce: time.Duration(jsonCfg.Watch.Debounce),
			Interval: time.Duration(jsonCfg.Watch.Interval),
			Backoff:  time.Duration(jsonCfg.Watch.Backoff),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

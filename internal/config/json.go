package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Project struct {
		Root         string `json:"root"`
		SettingsFile string `json:"settings_file"`
		TemplatesDir string `json:"templates_dir"`
	} `json:"project,omitempty"`

	Host struct {
		RailsBin       string   `json:"rails_bin"`
		BundleBin      string   `json:"bundle_bin"`
		CommandTimeout Duration `json:"command_timeout"`
		DryRun         bool     `json:"dry_run"`
	} `json:"host,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Project: Project{
			Root:         jsonCfg.Project.Root,
			SettingsFile: jsonCfg.Project.SettingsFile,
			TemplatesDir: jsonCfg.Project.TemplatesDir,
		},
		Host: Host{
			RailsBin:       jsonCfg.Host.RailsBin,
			BundleBin:      jsonCfg.Host.BundleBin,
			CommandTimeout: time.Duration(jsonCfg.Host.CommandTimeout),
			DryRun:         jsonCfg.Host.DryRun,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
	} `json:"crypto,omitempty"`

	Generator struct {
		DefaultLength int `json:"default_length"`
		MaxLength     int `json:"max_length"`
	} `json:"generator,omitempty"`

	Log struct {
		Level   string `json:"level"`
		Console bool   `json:"console"`
	} `json:"log,omitempty"`

	Workers struct {
		Concurrency  int      `json:"concurrency"`
		BatchTimeout Duration `json:"batch_timeout"`
	} `json:"workers,omitempty"`
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
		Crypto: Crypto{
			KDFIterations: jsonCfg.Crypto.KDFIterations,
		},
		Generator: Generator{
			DefaultLength: jsonCfg.Generator.DefaultLength,
			MaxLength:     jsonCfg.Generator.MaxLength,
		},
		Log: Log{
			Level:   jsonCfg.Log.Level,
			Console: jsonCfg.Log.Console,
		},
		Workers: Workers{
			Concurrency:  jsonCfg.Workers.Concurrency,
			BatchTimeout: time.Duration(jsonCfg.Workers.BatchTimeout),
		},
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

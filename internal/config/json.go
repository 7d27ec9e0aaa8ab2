package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Engine string `json:"engine"`

		DynamoDB struct {
			Endpoint string `json:"endpoint"`
			Region   string `json:"region"`
		} `json:"dynamodb,omitempty"`
	} `json:"storage,omitempty"`

	Secrets struct {
		Mode string `json:"mode"`

		Static struct {
			AdminUsername    string `json:"admin_username"`
			AdminPassword    string `json:"admin_password"`
			JWTSecretKey     string `json:"jwt_secret_key"`
			JWTMinutesToLive int    `json:"jwt_minutes_to_live"`
			TableName        string `json:"table_name"`
		} `json:"static,omitempty"`
	} `json:"secrets,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Engine: jsonCfg.Storage.Engine,
			DynamoDB: DynamoDB{
				Endpoint: jsonCfg.Storage.DynamoDB.Endpoint,
				Region:   jsonCfg.Storage.DynamoDB.Region,
			},
		},
		Secrets: Secrets{
			Mode: jsonCfg.Secrets.Mode,
			Static: Static{
				AdminUsername:    jsonCfg.Secrets.Static.AdminUsername,
				AdminPassword:    jsonCfg.Secrets.Static.AdminPassword,
				JWTSecretKey:     jsonCfg.Secrets.Static.JWTSecretKey,
				JWTMinutesToLive: jsonCfg.Secrets.Static.JWTMinutesToLive,
				TableName:        jsonCfg.Secrets.Static.TableName,
			},
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" or "30s" as well as plain nanosecond numbers.
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

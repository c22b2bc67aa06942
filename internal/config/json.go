package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey          string   `json:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer"`
		ResetTokenDuration    Duration `json:"reset_token_duration"`
		ConfirmTokenDuration  Duration `json:"confirm_token_duration"`
		SessionDuration       Duration `json:"session_duration"`
		SessionCookieName     string   `json:"session_cookie_name"`
		TwoFactorCodeDuration Duration `json:"two_factor_code_duration"`
		LockoutThreshold      int      `json:"lockout_threshold"`
		LockoutWindow         Duration `json:"lockout_window"`
		AppURL                string   `json:"app_url"`
	} `json:"auth,omitempty"`

	Email struct {
		Provider   string `json:"provider"`
		From       string `json:"from"`
		AdminEmail string `json:"admin_email"`
		SMTP       struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			User     string `json:"user"`
			Password string `json:"password"`
		} `json:"smtp,omitempty"`
		SendGrid struct {
			APIKey string `json:"api_key"`
			APIURL string `json:"api_url"`
		} `json:"sendgrid,omitempty"`
	} `json:"email,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			InstallerDir string `json:"installer_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`

	Admin struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"admin,omitempty"`
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
			TokenSignKey:          jsonCfg.Auth.TokenSignKey,
			TokenIssuer:           jsonCfg.Auth.TokenIssuer,
			ResetTokenDuration:    time.Duration(jsonCfg.Auth.ResetTokenDuration),
			ConfirmTokenDuration:  time.Duration(jsonCfg.Auth.ConfirmTokenDuration),
			SessionDuration:       time.Duration(jsonCfg.Auth.SessionDuration),
			SessionCookieName:     jsonCfg.Auth.SessionCookieName,
			TwoFactorCodeDuration: time.Duration(jsonCfg.Auth.TwoFactorCodeDuration),
			LockoutThreshold:      jsonCfg.Auth.LockoutThreshold,
			LockoutWindow:         time.Duration(jsonCfg.Auth.LockoutWindow),
			AppURL:                jsonCfg.Auth.AppURL,
		},
		Email: Email{
			Provider:   jsonCfg.Email.Provider,
			From:       jsonCfg.Email.From,
			AdminEmail: jsonCfg.Email.AdminEmail,
			SMTP: SMTP{
				Host:     jsonCfg.Email.SMTP.Host,
				Port:     jsonCfg.Email.SMTP.Port,
				User:     jsonCfg.Email.SMTP.User,
				Password: jsonCfg.Email.SMTP.Password,
			},
			SendGrid: SendGrid{
				APIKey: jsonCfg.Email.SendGrid.APIKey,
				APIURL: jsonCfg.Email.SendGrid.APIURL,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				InstallerDir: jsonCfg.Storage.Files.InstallerDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
		Admin: Admin{
			Email:    jsonCfg.Admin.Email,
			Password: jsonCfg.Admin.Password,
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

package client

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultCredentialsPath is the INI file read when --config is not given.
const DefaultCredentialsPath = "task.ini"

var ErrNoAPIKey = errors.New("credentials file has no apikey entry")

// Credentials are read from an INI file with top-level keys:
//
//	apikey = <key>
//	host   = http://localhost:3000 ; optional
type Credentials struct {
	APIKey string
	Host   string
}

// LoadCredentials reads the credentials file at path.
func LoadCredentials(path string) (*Credentials, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load credentials %s: %w", path, err)
	}

	section := file.Section(ini.DefaultSection)
	creds := &Credentials{
		APIKey: strings.TrimSpace(section.Key("apikey").String()),
		Host:   strings.TrimSpace(section.Key("host").String()),
	}
	if creds.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAPIKey)
	}
	return creds, nil
}

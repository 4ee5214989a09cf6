/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hyperledger-labs/service-locator/pkg/utils/errors"
	"github.com/hyperledger-labs/service-locator/platform/common/services"
	"github.com/hyperledger-labs/service-locator/platform/common/services/logging"
	"github.com/spf13/viper"
)

const (
	CmdRoot = "core"
	// EnvPrefix prefixes the environment variables overriding configuration keys.
	// Example: CORE_LOGGING_SPEC sets logging.spec.
	EnvPrefix = "CORE"
)

var logger = logging.MustGetLogger("config")

type Provider struct {
	confPath string
	Backend  *viper.Viper
}

// NewProvider loads core.yaml from confPath.
// A missing file is not an error: keys then come from the environment only.
func NewProvider(confPath string) (*Provider, error) {
	p := &Provider{confPath: confPath}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProvider returns an instance of the config service.
// It panics, if no instance is found.
func GetProvider(sp services.Provider) *Provider {
	s, err := sp.GetService(reflect.TypeOf((*Provider)(nil)))
	if err != nil {
		panic(err)
	}
	return s.(*Provider)
}

func (p *Provider) GetString(key string) string {
	return p.Backend.GetString(key)
}

func (p *Provider) GetBool(key string) bool {
	return p.Backend.GetBool(key)
}

func (p *Provider) GetInt(key string) int {
	return p.Backend.GetInt(key)
}

func (p *Provider) GetDuration(key string) time.Duration {
	return p.Backend.GetDuration(key)
}

func (p *Provider) IsSet(key string) bool {
	return p.Backend.IsSet(key)
}

// UnmarshalKey decodes the subtree at key into rawVal.
// Durations and comma separated strings are decoded into time.Duration and []string.
func (p *Provider) UnmarshalKey(key string, rawVal interface{}) error {
	return p.Backend.UnmarshalKey(key, rawVal, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
}

func (p *Provider) ConfigFileUsed() string {
	return p.Backend.ConfigFileUsed()
}

// LoggingConfig returns the logging section of the configuration.
func (p *Provider) LoggingConfig() logging.Config {
	return logging.Config{
		Format: p.GetString("logging.format"),
		Spec:   p.GetString("logging.spec"),
	}
}

func (p *Provider) load() error {
	v := viper.New()
	v.SetConfigName(CmdRoot)
	v.SetConfigType("yaml")
	if len(p.confPath) != 0 {
		v.AddConfigPath(p.confPath)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	p.Backend = v
	if len(p.confPath) == 0 {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debugf("no %s.yaml in [%s], using environment only", CmdRoot, p.confPath)
			return nil
		}
		return errors.Wrapf(err, "error when reading %s config file", CmdRoot)
	}
	logger.Debugf("loaded config from [%s]", v.ConfigFileUsed())
	return nil
}

func TranslatePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}

// GetPath returns the path at key, resolved against the directory of the config file.
func (p *Provider) GetPath(key string) string {
	path := p.Backend.GetString(key)
	if path == "" {
		return ""
	}
	return TranslatePath(filepath.Dir(p.Backend.ConfigFileUsed()), path)
}

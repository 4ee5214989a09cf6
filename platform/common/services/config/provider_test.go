/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hyperledger-labs/service-locator/platform/common/services/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeterOpts struct {
	Language string
	Timeout  time.Duration
	Aliases  []string
}

func TestReadFile(t *testing.T) {
	p, err := NewProvider("./testdata")
	require.NoError(t, err)

	assert.Equal(t, "a string", p.GetString("str"))
	assert.Equal(t, 5, p.GetInt("number"))
	assert.Equal(t, time.Second, p.GetDuration("duration"))
	assert.True(t, p.IsSet("path.absolute"))
	assert.False(t, p.IsSet("path.missing"))

	path, _ := filepath.Abs("testdata/file.name")
	assert.Equal(t, path, p.GetPath("path.relative"))
	assert.Equal(t, "/absolute/path/file.name", p.GetPath("path.absolute"))
	assert.Equal(t, "", p.GetPath("path.missing"))

	var opts greeterOpts
	require.NoError(t, p.UnmarshalKey("services.greeter", &opts))
	assert.Equal(t, "english", opts.Language)
	assert.Equal(t, 2*time.Second, opts.Timeout)
	assert.Equal(t, []string{"hi", "hello"}, opts.Aliases)

	lc := p.LoggingConfig()
	assert.Equal(t, "locator=debug:info", lc.Spec)
	assert.Equal(t, "json", lc.Format)
}

func TestEnvSubstitution(t *testing.T) {
	t.Setenv("CORE_STR", "new=string")
	t.Setenv("CORE_LOGGING_SPEC", "debug")

	p, err := NewProvider("./testdata")
	require.NoError(t, err)
	assert.Equal(t, "new=string", p.GetString("str"))
	assert.Equal(t, "debug", p.LoggingConfig().Spec)
}

func TestMissingFile(t *testing.T) {
	t.Setenv("CORE_STR", "from env")

	p, err := NewProvider(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "from env", p.GetString("str"))
	assert.Equal(t, "", p.ConfigFileUsed())

	p, err = NewProvider("")
	require.NoError(t, err)
	assert.Equal(t, "from env", p.GetString("str"))
}

func TestGetProvider(t *testing.T) {
	p, err := NewProvider("./testdata")
	require.NoError(t, err)

	l := locator.New()
	assert.Panics(t, func() { GetProvider(l) })

	require.NoError(t, l.RegisterService(p))
	assert.Same(t, p, GetProvider(l))
}

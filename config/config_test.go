package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir, err := ioutil.TempDir("", "client-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "client.toml")
	content := `
pd-addrs = ["pd0:2379", "pd1:2379"]
log-level = "debug"

[txn]
lock-ttl = 5000
`
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

	conf, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pd0:2379", "pd1:2379"}, conf.PDAddrs)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, uint64(5000), conf.Txn.LockTTL)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, uint64(10000), conf.Txn.HeartBeatTTL)
	assert.Equal(t, uint32(256), conf.Txn.ScanBatchSize)
	assert.Equal(t, "", conf.Security.CAPath)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(os.TempDir(), "no-such-client.toml"))
	assert.Error(t, err)
}

func TestDefaultConf(t *testing.T) {
	assert.Equal(t, []string{"127.0.0.1:2379"}, DefaultConf.PDAddrs)
	assert.Equal(t, uint64(3000), DefaultConf.Txn.LockTTL)
}

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
	"github.com/ngaut/log"
)

// Config holds the client side options. Every field has a usable default; a
// TOML file overrides them field by field.
type Config struct {
	PDAddrs  []string `toml:"pd-addrs"`  // Placement driver endpoints, host:port.
	LogLevel string   `toml:"log-level"` // One of fatal, error, warn, info, debug.
	Txn      Txn      `toml:"txn"`       // Transaction defaults.
	Security Security `toml:"security"`  // TLS material for PD and store connections.
}

// Txn carries the defaults the transaction orchestrator attaches to the
// requests it builds.
type Txn struct {
	LockTTL       uint64 `toml:"lock-ttl"`        // Milliseconds a prewrite lock lives before others may resolve it.
	HeartBeatTTL  uint64 `toml:"heart-beat-ttl"`  // TTL advised by transaction heart beats.
	ScanBatchSize uint32 `toml:"scan-batch-size"` // Default limit attached to scan requests.
}

// Security points at the TLS material used when talking to the cluster.
// Empty paths mean plaintext connections.
type Security struct {
	CAPath   string `toml:"ca-path"`
	CertPath string `toml:"cert-path"`
	KeyPath  string `toml:"key-path"`
}

// DefaultConf mirrors the server's out-of-the-box settings.
var DefaultConf = Config{
	PDAddrs:  []string{"127.0.0.1:2379"},
	LogLevel: "info",
	Txn: Txn{
		LockTTL:       3000,
		HeartBeatTTL:  10000,
		ScanBatchSize: 256,
	},
}

// LoadFromFile reads a TOML file over the defaults and applies the resulting
// log level. This is the only fallible entry point of the module; request
// construction never fails.
func LoadFromFile(path string) (*Config, error) {
	conf := DefaultConf
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, errors.Trace(err)
	}
	conf.ApplyLogLevel()
	log.Debugf("loaded config from %s", path)
	return &conf, nil
}

// ApplyLogLevel sets the global log level to the configured one.
func (c *Config) ApplyLogLevel() {
	log.SetLevelByString(c.LogLevel)
}

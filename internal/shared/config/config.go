// Copyright (c) 2025 Justin Cranford

// Package config loads the crypto core's operator-facing settings: which
// security policy to run the CLI against, where the trust anchor and CRL
// live, and how verbose to log. Backed by viper, binding flags, env vars,
// and config files together the same way the rest of the server fleet does.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable binding, e.g.
// OPCUACRYPTO_POLICY_URI.
const EnvPrefix = "OPCUACRYPTO"

// DefaultPolicyURI is used when no policy is configured.
const DefaultPolicyURI = "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256"

// Config holds the settings the CLI and any embedding application need to
// construct a CryptoProvider and a PKIProvider.
type Config struct {
	PolicyURI   string `mapstructure:"policy_uri"`
	CACertPath  string `mapstructure:"ca_cert_path"`
	CRLPath     string `mapstructure:"crl_path"`
	OCSPURL     string `mapstructure:"ocsp_url"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	TraceOutput string `mapstructure:"trace_output"`
}

// BindFlags registers the config's command-line flags on fs and wires viper
// to prefer flags, then env vars, then the config file, then defaults.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.String("policy-uri", DefaultPolicyURI, "OPC UA security policy URI")
	fs.String("ca-cert-path", "", "path to the trust anchor (CA) certificate")
	fs.String("crl-path", "", "path to an optional certificate revocation list")
	fs.String("ocsp-url", "", "optional OCSP responder URL for revocation checks")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or otel")
	fs.String("trace-output", "", "file to write span output to, empty disables tracing")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlags(fs)
}

// Load resolves the final Config from v's bound flags, env vars, config
// file, and defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		PolicyURI:   v.GetString("policy-uri"),
		CACertPath:  v.GetString("ca-cert-path"),
		CRLPath:     v.GetString("crl-path"),
		OCSPURL:     v.GetString("ocsp-url"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		TraceOutput: v.GetString("trace-output"),
	}

	if cfg.PolicyURI == "" {
		return nil, fmt.Errorf("policy-uri must not be empty")
	}

	return cfg, nil
}

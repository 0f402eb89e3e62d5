// internal/config/policy.go
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"pwsim-core/policy"
	"pwsim-core/wordlist"
)

// LoadPolicy reads a policy file (YAML/JSON/TOML, chosen by extension) and
// overlays it onto policy.Default(); keys absent from the file keep their
// defaults. An empty path returns the default policy unchanged. Warnings
// cover recoverable oddities the caller should log.
func LoadPolicy(path string) (policy.Config, []string, error) {
	cfg := policy.Default()
	if path == "" {
		return cfg, nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("min_length", cfg.MinLength)
	v.SetDefault("require_upper", cfg.RequireUpper)
	v.SetDefault("require_lower", cfg.RequireLower)
	v.SetDefault("require_digit", cfg.RequireDigit)
	v.SetDefault("require_symbol", cfg.RequireSymbol)

	if err := v.ReadInConfig(); err != nil {
		return cfg, nil, fmt.Errorf("policy config %s: %w", path, err)
	}

	cfg.MinLength = v.GetInt("min_length")
	if cfg.MinLength < 0 {
		return cfg, nil, fmt.Errorf("policy config %s: min_length must be >= 0", path)
	}
	cfg.RequireUpper = v.GetBool("require_upper")
	cfg.RequireLower = v.GetBool("require_lower")
	cfg.RequireDigit = v.GetBool("require_digit")
	cfg.RequireSymbol = v.GetBool("require_symbol")

	bl, warn := blacklistValue(v.Get("blacklist"), cfg.Blacklist)
	cfg.Blacklist = bl

	var warns []string
	if warn != "" {
		warns = append(warns, warn)
	}
	return cfg, warns, nil
}

// blacklistValue coerces the configured blacklist. Supported shapes: absent
// (keep defaults), a list of strings, or a string path to a word file. Any
// other shape, including an unreadable word file, degrades to an empty
// blacklist with a warning rather than failing the run.
func blacklistValue(raw any, def []string) ([]string, string) {
	switch val := raw.(type) {
	case nil:
		return def, ""
	case []string:
		return val, ""
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Sprintf("blacklist entry %v is not a string; using an empty blacklist", item)
			}
			out = append(out, s)
		}
		return out, ""
	case string:
		words, err := wordlist.Load(val)
		if err != nil {
			return nil, fmt.Sprintf("blacklist file %s unreadable (%v); using an empty blacklist", val, err)
		}
		return words, ""
	default:
		return nil, fmt.Sprintf("blacklist has unsupported type %T; using an empty blacklist", raw)
	}
}

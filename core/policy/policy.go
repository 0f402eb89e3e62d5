// core/policy/policy.go
package policy

import "strings"

// Config is the declarative rule set a password is checked against.
// Blacklist entries match the whole password, case-insensitively.
type Config struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
	Blacklist     []string
}

// Default returns the stock policy: eight characters minimum, upper/lower/
// digit required, symbols optional, and the usual suspects blacklisted.
func Default() Config {
	return Config{
		MinLength:    8,
		RequireUpper: true,
		RequireLower: true,
		RequireDigit: true,
		Blacklist:    []string{"password", "123456", "qwerty"},
	}
}

// Result is the verdict for one password. Every per-rule field is reported
// so auditors can see which requirement failed, not just the final bit.
type Result struct {
	Password    string
	Length      int // rune count, not bytes
	MinLength   bool
	HasUpper    bool
	HasLower    bool
	HasDigit    bool
	HasSymbol   bool
	BlacklistOK bool
	PolicyOK    bool
}

// Engine checks passwords against one immutable Config.
// Safe for concurrent use.
type Engine struct {
	cfg       Config
	blacklist map[string]struct{}
}

// New builds an Engine. The blacklist is normalized to lowercase once so
// Check stays allocation-light.
func New(cfg Config) *Engine {
	bl := make(map[string]struct{}, len(cfg.Blacklist))
	for _, b := range cfg.Blacklist {
		bl[strings.ToLower(b)] = struct{}{}
	}
	return &Engine{cfg: cfg, blacklist: bl}
}

// isSymbol reports whether r is printable ASCII punctuation:
// 0x21-0x2F, 0x3A-0x40, 0x5B-0x60 or 0x7B-0x7E. Space is not a symbol.
func isSymbol(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// Check scores a single password. The empty string is valid input; it simply
// fails the length and class requirements.
func (e *Engine) Check(pwd string) Result {
	r := Result{Password: pwd}
	for _, c := range pwd {
		r.Length++
		switch {
		case c >= 'a' && c <= 'z':
			r.HasLower = true
		case c >= 'A' && c <= 'Z':
			r.HasUpper = true
		case c >= '0' && c <= '9':
			r.HasDigit = true
		case isSymbol(c):
			r.HasSymbol = true
		}
	}
	_, banned := e.blacklist[strings.ToLower(pwd)]
	r.BlacklistOK = !banned
	r.MinLength = r.Length >= e.cfg.MinLength

	ok := r.MinLength && r.BlacklistOK
	if e.cfg.RequireUpper && !r.HasUpper {
		ok = false
	}
	if e.cfg.RequireLower && !r.HasLower {
		ok = false
	}
	if e.cfg.RequireDigit && !r.HasDigit {
		ok = false
	}
	if e.cfg.RequireSymbol && !r.HasSymbol {
		ok = false
	}
	r.PolicyOK = ok
	return r
}

// Audit checks every password in order: one Result per input, duplicates
// included.
func (e *Engine) Audit(passwords []string) []Result {
	out := make([]Result, 0, len(passwords))
	for _, p := range passwords {
		out = append(out, e.Check(p))
	}
	return out
}

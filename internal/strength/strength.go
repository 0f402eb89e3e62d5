// internal/strength/strength.go
package strength

import "github.com/nbutton23/zxcvbn-go"

// Score rates a password 0 (hopeless) through 4 (strong) with zxcvbn.
// It gives the report an estimator independent of the simulator's
// pool-based entropy model.
func Score(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

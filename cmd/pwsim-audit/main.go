// cmd/pwsim-audit/main.go
package main

import (
	"pwsim/internal/appshell"
	"pwsim/internal/auditapp"
)

func main() { appshell.Main(auditapp.RunContext) }

// cmd/pwsim-report/main.go
package main

import (
	"pwsim/internal/appshell"
	"pwsim/internal/reportapp"
)

func main() { appshell.Main(reportapp.RunContext) }

// cmd/pwsim/main.go
package main

import (
	"pwsim/internal/app"
	"pwsim/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }

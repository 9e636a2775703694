// cmd/systemsgen/main.go
package main

import (
	"systemsgen/internal/app"
	"systemsgen/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

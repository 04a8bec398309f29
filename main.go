// main.go
package main

import cmd "github.com/mwiater/gochatcli/cmd/gochatcli"

// main starts the gochatcli application by delegating to the cobra root
// command defined in the gochatcli package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}

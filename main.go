package main

import "github.com/LegacyCodeHQ/srcdep/cmd"

func main() {
	cmd.Execute()
}

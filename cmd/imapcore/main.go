// Command imapcore runs selected-state IMAP commands against an account and
// composes MIME multipart bodies.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

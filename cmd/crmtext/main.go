// Command crmtext calls the CRMText API from the command line.
//
// Credentials and settings come from flags, CRMTEXT_* environment
// variables (a .env file in the working directory is loaded first) or a
// config file given with --config, in that order of precedence.
//
//	CRMTEXT_USERNAME=me CRMTEXT_PASSWORD=secret CRMTEXT_KEYWORD=mystore \
//		crmtext send-sms 15551234567 --message "Hello"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

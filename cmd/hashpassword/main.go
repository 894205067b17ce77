// Command hashpassword prints the bcrypt hash to use as ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpassword 's3cret'
package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/cashbook_backend/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpassword <password>")
		os.Exit(2)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

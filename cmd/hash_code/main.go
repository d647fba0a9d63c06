package main

import (
	"fmt"
	"os"

	"semicolon_service/pkg/encrypt"
)

// 產生 gate.admin_code_hash
// go run ./cmd/hash_code <admin code>
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash_code <admin code>")
		os.Exit(2)
	}
	hashed, err := encrypt.HashCode(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hashed)
}

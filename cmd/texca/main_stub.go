//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of texca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/texca` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless output use `go run ./cmd/texca-snapshot`.")
	os.Exit(2)
}

// derive_seed.go prints the seed and fingerprint for a recovery phrase.
// Useful for checking test vectors against other wallet implementations.
// Usage: go run scripts/derive_seed.go <lang> "<phrase>" [passphrase]
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Klingon-tech/klingnet-wallet/internal/wallet"
	"github.com/Klingon-tech/klingnet-wallet/pkg/mnemonic"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: derive_seed <lang> <phrase> [passphrase]")
		os.Exit(1)
	}
	lang, phrase := os.Args[1], os.Args[2]
	passphrase := ""
	if len(os.Args) > 3 {
		passphrase = os.Args[3]
	}

	if !mnemonic.IsPhraseValid(lang, phrase) {
		fmt.Fprintf(os.Stderr, "phrase does not validate for language %q\n", lang)
		os.Exit(1)
	}
	seed := mnemonic.Seed(phrase, passphrase)
	fmt.Printf("seed=%s\n", hex.EncodeToString(seed))
	fmt.Printf("fingerprint=%s\n", wallet.Fingerprint(seed))
}

// Command hash-generator prints bcrypt hashes for seeding traveler
// accounts by hand.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := run(os.Stdout, os.Stdin, *cost, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run hashes each password in args, or one password per line of in when
// args is empty. Passwords that would be rejected at sign-up are skipped
// with a message.
func run(out io.Writer, in io.Reader, cost int, args []string) error {
	passwords := args
	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	hasher := auth.NewBcryptHasher(cost)
	for _, password := range passwords {
		if err := domain.ValidatePassword(password); err != nil {
			fmt.Fprintf(out, "Skipped: %v\n\n", err)
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fmt.Fprintf(out, "Hash: %s\n\n", hash)
	}
	return nil
}

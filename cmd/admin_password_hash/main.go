// Command admin_password_hash reads an admin password from stdin and prints the
// bcrypt value to put in ADMIN_PASSWORD_HASH.
//
//	echo -n 'a long admin password' | go run ./cmd/admin_password_hash
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/storefront_backend/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		logger.Error("Failed to read password from stdin", slog.String("error", err.Error()))
		os.Exit(1)
	}
	password := strings.TrimRight(line, "\r\n")

	hash, err := utils.HashAdminPassword(password)
	if err != nil {
		logger.Error("Failed to hash admin password", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(hash)
}

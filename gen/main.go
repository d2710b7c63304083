// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package main writes brewbump.schema.json to the repository root.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/defenseunicorns/brewbump/config"
)

func run(root string) error {
	b, err := json.MarshalIndent(config.Schema(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, "brewbump.schema.json"), append(b, '\n'), 0644)
}

func main() {
	// usage: `go run gen/main.go`
	if err := run(""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

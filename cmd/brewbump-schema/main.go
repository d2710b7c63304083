// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package main prints the JSON schema for the brewbump config file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/defenseunicorns/brewbump/config"
)

func main() {
	schema := config.Schema()

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v", err)
		os.Exit(1)
	}

	fmt.Fprint(os.Stdout, string(b))
}

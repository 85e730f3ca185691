// Copyright 2026 TrustIndex Authors
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/trustindexhq/trustindex/cmd"

func main() {
	cmd.Execute()
}

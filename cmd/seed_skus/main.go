// seed_skus generates a SQL script populating the SKU catalogue from a CSV
// of industry,process_name,description rows. Catalogue exports from older
// ERP tools arrive ISO-8859-1 encoded, so the input is transcoded before
// parsing.
//
// Usage: go run ./cmd/seed_skus [path/skus.csv]
// Defaults to skus.csv in the current directory.
// Writes: migrations/002_seed_skus.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type skuRow struct {
	industry    string
	processName string
	description string
}

func main() {
	csvPath := "skus.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read CSV: %v\n", err)
		os.Exit(1)
	}
	// Legacy exports are ISO-8859-1; valid UTF-8 passes through untouched.
	content := string(raw)
	if !utf8.ValidString(content) {
		decoded, _, err := transform.String(charmap.ISO8859_1.NewDecoder(), content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "transcode CSV: %v\n", err)
			os.Exit(1)
		}
		content = decoded
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse CSV: %v\n", err)
		os.Exit(1)
	}

	seen := make(map[string]bool)
	var rows []skuRow
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		industry := strings.TrimSpace(rec[0])
		process := strings.TrimSpace(rec[1])
		if industry == "" || process == "" {
			continue
		}
		// Skip a header row
		if i == 0 && strings.EqualFold(industry, "industry") {
			continue
		}
		key := industry + "|" + process
		if seen[key] {
			continue
		}
		seen[key] = true
		desc := ""
		if len(rec) > 2 {
			desc = strings.TrimSpace(rec[2])
		}
		rows = append(rows, skuRow{industry: industry, processName: process, description: desc})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].industry != rows[j].industry {
			return rows[i].industry < rows[j].industry
		}
		return rows[i].processName < rows[j].processName
	})

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_skus.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- SKU catalogue (industry / manufacturing process)\n")
	out.WriteString("-- Generated from " + filepath.Base(csvPath) + " by cmd/seed_skus\n\n")
	for _, r := range rows {
		fmt.Fprintf(out,
			"INSERT INTO skus (id, industry, process_name, description)\nVALUES (gen_random_uuid(), '%s', '%s', '%s')\nON CONFLICT (industry, process_name) DO UPDATE SET description = EXCLUDED.description;\n",
			escapeSQL(r.industry), escapeSQL(r.processName), escapeSQL(r.description))
	}

	fmt.Printf("generated %s: %d SKUs\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

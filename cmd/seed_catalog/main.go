// seed_catalog genera el script SQL que puebla las tablas paramétricas de la
// bodega (unidades y tipos de transacción) a partir del catálogo embebido.
//
// Uso: go run ./cmd/seed_catalog
// Escribe: internal/infrastructure/postgres/migrations/002_seed_lookups.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type unitSeed struct {
	id, name, abbreviation string
	isVolume               bool
}

type typeSeed struct {
	id, name, description string
	unitAbbr              string
	affectsQuantity       bool
	multiplier            int
	milestone             string
	milestonePolicy       string
}

// IDs fijos para que el script sea idempotente entre ejecuciones.
var units = []unitSeed{
	{"0d4f7a1e-1111-4a01-9c01-000000000001", "Barrels", "bbl", true},
	{"0d4f7a1e-1111-4a01-9c01-000000000002", "Gallons", "gal", true},
	{"0d4f7a1e-1111-4a01-9c01-000000000003", "Liters", "L", true},
	{"0d4f7a1e-1111-4a01-9c01-000000000004", "Pounds", "lb", false},
	{"0d4f7a1e-1111-4a01-9c01-000000000005", "Grams", "g", false},
}

var types = []typeSeed{
	{"7c2b9e40-2222-4b02-8d02-000000000001", "Transfer In", "Recepción de producto desde otro tanque", "bbl", true, 1, "", ""},
	{"7c2b9e40-2222-4b02-8d02-000000000002", "Transfer Out", "Envío de producto hacia otro tanque", "bbl", true, -1, "", ""},
	{"7c2b9e40-2222-4b02-8d02-000000000003", "Waste/Drain", "Merma o drenado del tanque", "bbl", true, -1, "", ""},
	{"7c2b9e40-2222-4b02-8d02-000000000004", "Sample", "Toma de muestra para laboratorio", "gal", true, -1, "", ""},
	{"7c2b9e40-2222-4b02-8d02-000000000005", "Yeast Addition", "Inoculación de levadura", "lb", false, 0, "yeast", "first"},
	{"7c2b9e40-2222-4b02-8d02-000000000006", "Lysozyme Addition", "Adición de lisozima", "g", false, 0, "lysozyme", "first"},
	{"7c2b9e40-2222-4b02-8d02-000000000007", "Note", "Observación sin efecto sobre inventario", "bbl", false, 0, "", ""},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_lookups.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Unidades y catálogo de tipos de transacción.\n")
	out.WriteString("-- Generado con: go run ./cmd/seed_catalog\n\n")

	out.WriteString("INSERT INTO units (id, name, abbreviation, is_volume) VALUES\n")
	for i, u := range units {
		sep := ","
		if i == len(units)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', %s)%s\n",
			u.id, escapeSQL(u.name), escapeSQL(u.abbreviation), sqlBool(u.isVolume), sep)
	}
	out.WriteString("ON CONFLICT (name) DO UPDATE SET abbreviation = EXCLUDED.abbreviation, is_volume = EXCLUDED.is_volume;\n\n")

	for _, t := range types {
		fmt.Fprintf(out, "INSERT INTO transaction_types (id, name, description, unit_id, affects_tank_quantity, quantity_multiplier, milestone, milestone_policy)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s', '%s', u.id, %s, %d, '%s', '%s'\n",
			t.id, escapeSQL(t.name), escapeSQL(t.description),
			sqlBool(t.affectsQuantity), t.multiplier, t.milestone, t.milestonePolicy)
		fmt.Fprintf(out, "FROM units u WHERE u.abbreviation = '%s'\n", t.unitAbbr)
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
	}

	fmt.Printf("Generado %s: %d unidades, %d tipos\n", outPath, len(units), len(types))
}

func sqlBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
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

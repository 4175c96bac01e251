// seed genera el script SQL que carga en PostgreSQL el mismo conjunto de datos
// que usa la fuente memory (bases, operador demo, saldos, activos, traslados y movimientos).
//
// Uso: go run ./cmd/seed [ruta/fixture.yaml]
// Sin argumento usa el conjunto de demostración embebido.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_sample.sql
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jhoicas/asset-balance-api/internal/infrastructure/memory"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := memory.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar fixture: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_sample.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, f); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d bases, %d activos, %d traslados, %d movimientos\n",
		outPath, len(f.Bases), len(f.Assets), len(f.Transfers), len(f.Movements))
}

// writeSeed escribe los INSERT en orden de dependencias; los movimientos se
// insertan en el orden del fixture para que seq conserve el orden del libro.
func writeSeed(w io.Writer, f *memory.Fixture) error {
	b := bufio.NewWriter(w)

	b.WriteString("-- Conjunto de demostración del tablero de activos\n")
	b.WriteString("-- Generado por cmd/seed; no editar a mano\n\n")

	b.WriteString("-- 1. Bases\n")
	for _, r := range f.Bases {
		fmt.Fprintf(b, "INSERT INTO bases (id, name, location) VALUES (%s, %s, %s)\n",
			quote(r.ID), quote(r.Name), quote(r.Location))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, location = EXCLUDED.location;\n")
	}

	b.WriteString("\n-- 2. Operador de demostración\n")
	u := f.DemoUser
	fmt.Fprintf(b, "INSERT INTO operators (id, name, role, base_id, is_demo) VALUES (%s, %s, %s, %s, TRUE)\n",
		quote(u.ID), quote(u.Name), quote(u.Role), quote(u.Base))
	b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role, base_id = EXCLUDED.base_id, is_demo = TRUE;\n")

	b.WriteString("\n-- 3. Saldos de apertura\n")
	baseIDs := make([]string, 0, len(f.OpeningBalances))
	for id := range f.OpeningBalances {
		baseIDs = append(baseIDs, id)
	}
	sort.Strings(baseIDs)
	for _, id := range baseIDs {
		fmt.Fprintf(b, "INSERT INTO opening_balances (base_id, quantity) VALUES (%s, %d)\n", quote(id), f.OpeningBalances[id])
		b.WriteString("ON CONFLICT (base_id) DO UPDATE SET quantity = EXCLUDED.quantity;\n")
	}

	b.WriteString("\n-- 4. Activos\n")
	for _, r := range f.Assets {
		fmt.Fprintf(b, "INSERT INTO assets (id, name, category, quantity, base_id, status, assigned_to) VALUES (%s, %s, %s, %d, %s, %s, %s)\n",
			quote(r.ID), quote(r.Name), quote(r.Category), r.Quantity, quote(r.Base), quote(r.Status), nullable(r.AssignedTo))
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	b.WriteString("\n-- 5. Traslados\n")
	for _, r := range f.Transfers {
		fmt.Fprintf(b, "INSERT INTO transfers (id, asset_id, asset_name, quantity, from_base_id, to_base_id, date, status, initiated_by) VALUES (%s, %s, %s, %d, %s, %s, %s, %s, %s)\n",
			quote(r.ID), quote(r.AssetID), quote(r.AssetName), r.Quantity, quote(r.FromBase), quote(r.ToBase), quote(r.Date), quote(r.Status), quote(r.InitiatedBy))
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	b.WriteString("\n-- 6. Libro de movimientos (orden de inserción)\n")
	for _, r := range f.Movements {
		fmt.Fprintf(b, "INSERT INTO asset_movements (id, asset_id, asset_name, category, type, quantity, base_id, date, related_transfer_id) VALUES (%s, %s, %s, %s, %s, %d, %s, %s, %s)\n",
			quote(r.ID), quote(r.AssetID), quote(r.AssetName), quote(r.Category), quote(r.Type), r.Quantity, quote(r.Base), quote(r.Date), nullable(r.RelatedTransferID))
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	return b.Flush()
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
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

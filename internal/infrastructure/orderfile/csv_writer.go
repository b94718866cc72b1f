package orderfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
)

// FileName nombre fijo del archivo de pedido.
const FileName = "Article_Order.csv"

var _ order.DocumentWriter = (*CSVWriter)(nil)

// CSVWriter escribe el pedido como "Article_No<sep>Description" más una línea por artículo.
type CSVWriter struct {
	dir       string
	separator rune
}

// NewCSVWriter construye el writer; el archivo se sobrescribe en cada pedido.
func NewCSVWriter(dir string, separator rune) *CSVWriter {
	return &CSVWriter{dir: dir, separator: separator}
}

// Write genera dir/Article_Order.csv y devuelve su ruta.
func (w *CSVWriter) Write(_ context.Context, lines []order.Line) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de pedidos: %w", err)
	}
	path := filepath.Join(w.dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo de pedido: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = w.separator
	records := make([][]string, 0, len(lines)+1)
	records = append(records, []string{"Article_No", "Description"})
	for _, l := range lines {
		records = append(records, []string{strconv.FormatInt(l.ArticleID, 10), l.Description})
	}
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("escribir pedido: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cerrar pedido: %w", err)
	}
	return path, nil
}

package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Columnas del archivo de importación de existencias, en el orden en que se exportan.
const (
	colArticle      = "Article"
	colCategory     = "Category"
	colAmount       = "Amount"
	colCurrencyCode = "CurrencyCode"
	colCountry      = "Country"
	colStatus       = "Status"
	colAisle        = "Aisle"
	colShelf        = "Shelf"
	colTray         = "Tray"
	colQuantity     = "Quantity"
)

// ImportColumns cabecera esperada del archivo de importación.
var ImportColumns = []string{
	colArticle, colCategory, colAmount, colCurrencyCode, colCountry,
	colStatus, colAisle, colShelf, colTray, colQuantity,
}

// ImportRow una fila validada del archivo.
type ImportRow struct {
	Line         int
	Article      string
	Category     string
	Amount       decimal.Decimal
	CurrencyCode string
	Country      string
	Status       string
	Aisle        string
	Shelf        int
	Tray         int
	Quantity     int
}

// ParseImport lee y valida el archivo completo antes de tocar la base de datos.
// Acepta UTF-8 con o sin BOM; el orden de las columnas es libre mientras estén todas.
// Los nombres de columna se comparan sin mayúsculas ni espacios; los valores de texto se
// conservan tal cual porque son claves naturales de búsqueda exacta.
func ParseImport(r io.Reader) ([]ImportRow, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: leer cabecera: %v", domain.ErrInvalidCSV, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cols := make(map[string]int, len(ImportColumns))
	for _, name := range ImportColumns {
		i, ok := index[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidCSV, name)
		}
		cols[name] = i
	}

	var rows []ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSV, err)
		}
		line, _ := reader.FieldPos(0)
		row, err := parseRow(record, cols, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string, cols map[string]int, line int) (ImportRow, error) {
	cell := func(name string) (string, error) {
		i := cols[name]
		if i >= len(record) {
			return "", fmt.Errorf("%w: línea %d: falta la columna %q", domain.ErrInvalidCSV, line, name)
		}
		v := record[i]
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("%w: línea %d: celda vacía en %q", domain.ErrInvalidCSV, line, name)
		}
		return v, nil
	}
	number := func(name string) (string, error) {
		v, err := cell(name)
		return strings.TrimSpace(v), err
	}
	integer := func(name string) (int, error) {
		v, err := number(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: línea %d: %q no es un entero en %q", domain.ErrInvalidCSV, line, v, name)
		}
		return n, nil
	}

	row := ImportRow{Line: line}
	var err error
	if row.Article, err = cell(colArticle); err != nil {
		return row, err
	}
	if row.Category, err = cell(colCategory); err != nil {
		return row, err
	}
	amount, err := number(colAmount)
	if err != nil {
		return row, err
	}
	if row.Amount, err = decimal.NewFromString(amount); err != nil {
		return row, fmt.Errorf("%w: línea %d: %q no es un importe", domain.ErrInvalidCSV, line, amount)
	}
	if row.CurrencyCode, err = cell(colCurrencyCode); err != nil {
		return row, err
	}
	if row.Country, err = cell(colCountry); err != nil {
		return row, err
	}
	if row.Status, err = cell(colStatus); err != nil {
		return row, err
	}
	if row.Aisle, err = cell(colAisle); err != nil {
		return row, err
	}
	if row.Shelf, err = integer(colShelf); err != nil {
		return row, err
	}
	if row.Tray, err = integer(colTray); err != nil {
		return row, err
	}
	if row.Quantity, err = integer(colQuantity); err != nil {
		return row, err
	}

	if !row.Amount.IsPositive() {
		return row, fmt.Errorf("%w: línea %d: Please enter a positive number for the amount!", domain.ErrInvalidFormat, line)
	}
	if row.Quantity <= 0 {
		return row, fmt.Errorf("%w: línea %d: Please enter a positive number for the quantity!", domain.ErrInvalidFormat, line)
	}
	return row, nil
}

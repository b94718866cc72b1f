package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

// Codificaciones aceptadas para el archivo de códigos de barras.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// Barcode una fila EAN;Description del archivo.
type Barcode struct {
	EAN         string
	Description string
}

// ParseBarcodes lee un CSV con cabecera EAN y Description.
// Las listas exportadas desde Excel suelen venir en Windows-1252.
func ParseBarcodes(r io.Reader, encoding string, sep rune) ([]Barcode, error) {
	var decoded io.Reader
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8:
		decoded = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	case EncodingWindows1252, "cp1252":
		decoded = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("%w: codificación desconocida %q", domain.ErrInvalidInput, encoding)
	}

	reader := csv.NewReader(decoded)
	reader.Comma = sep
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: leer cabecera: %v", domain.ErrInvalidCSV, err)
	}
	eanCol, descCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ean":
			eanCol = i
		case "description":
			descCol = i
		}
	}
	if eanCol < 0 || descCol < 0 {
		return nil, fmt.Errorf("%w: se esperan las columnas EAN y Description", domain.ErrInvalidCSV)
	}

	var out []Barcode
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: %v", domain.ErrInvalidCSV, line, err)
		}
		if len(rec) <= eanCol || len(rec) <= descCol {
			return nil, fmt.Errorf("%w: línea %d: faltan campos", domain.ErrInvalidCSV, line)
		}
		b := Barcode{EAN: strings.TrimSpace(rec[eanCol]), Description: strings.TrimSpace(rec[descCol])}
		if b.EAN == "" && b.Description == "" {
			continue
		}
		if b.EAN == "" || b.Description == "" {
			return nil, fmt.Errorf("%w: línea %d: EAN y descripción son obligatorios", domain.ErrInvalidCSV, line)
		}
		out = append(out, b)
	}
	return out, nil
}

// ImportBarcodes inserta los mapeos que aún no existen, en una sola transacción.
func (s *Seeder) ImportBarcodes(ctx context.Context, rows []Barcode) (*Result, error) {
	res := &Result{}
	err := s.tx.Run(ctx, func(repos repository.Repositories) error {
		for _, b := range rows {
			found, err := repos.BarcodeMappings.GetByEANAndDescription(ctx, b.EAN, b.Description)
			if err != nil {
				return err
			}
			if found != nil {
				continue
			}
			m := &entity.BarcodeMapping{EAN: b.EAN, Description: b.Description}
			m.Stamp(s.clock.Now())
			if err := repos.BarcodeMappings.Create(ctx, m); err != nil {
				return err
			}
			res.Created++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importar códigos de barras: %w", err)
	}
	s.log.Info().Int("rows", len(rows)).Int("created", res.Created).Msg("códigos de barras cargados")
	return res, nil
}

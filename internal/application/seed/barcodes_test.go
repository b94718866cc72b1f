package seed_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/seed"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

// ──────────────────────────────────────────────────────────────
// ParseBarcodes
// ──────────────────────────────────────────────────────────────

func TestParseBarcodes_UTF8(t *testing.T) {
	in := "\ufeffEAN;Description\n5449000285780;Coca-Cola 0.5l\n\n7610400071680;Rivella Grün\n"
	rows, err := seed.ParseBarcodes(strings.NewReader(in), seed.EncodingUTF8, ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, seed.Barcode{EAN: "5449000285780", Description: "Coca-Cola 0.5l"}, rows[0])
	assert.Equal(t, "Rivella Grün", rows[1].Description)
}

func TestParseBarcodes_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("Description;EAN\nGrüner Maxirock;7612345678901\n")
	require.NoError(t, err)

	rows, err := seed.ParseBarcodes(bytes.NewReader([]byte(raw)), seed.EncodingWindows1252, ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grüner Maxirock", rows[0].Description)
	assert.Equal(t, "7612345678901", rows[0].EAN)
}

func TestParseBarcodes_Errores(t *testing.T) {
	cases := map[string]string{
		"vacío":           "",
		"sin columna":     "EAN;Name\n1;x\n",
		"sin EAN":         "EAN;Description\n;Cola\n",
		"campos de menos": "EAN;Description\n123\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := seed.ParseBarcodes(strings.NewReader(in), seed.EncodingUTF8, ';')
			assert.ErrorIs(t, err, domain.ErrInvalidCSV)
		})
	}

	_, err := seed.ParseBarcodes(strings.NewReader("EAN;Description\n"), "latin-9", ';')
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────
// ImportBarcodes
// ──────────────────────────────────────────────────────────────

func TestImportBarcodes_Idempotente(t *testing.T) {
	s, store := newSeeder()
	ctx := context.Background()
	rows := []seed.Barcode{
		{EAN: "5449000285780", Description: "Coca-Cola 0.5l"},
		{EAN: "5449000285780", Description: "Coca-Cola Zero 0.5l"},
	}

	res, err := s.ImportBarcodes(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	res, err = s.ImportBarcodes(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)

	// el EAN resuelve al primer mapeo cargado
	m, err := store.Repositories().BarcodeMappings.GetByEAN(ctx, "5449000285780")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Coca-Cola 0.5l", m.Description)
}

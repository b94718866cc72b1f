package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

// Recursos exportables; coinciden con el segmento de ruta y el nombre del archivo.
const (
	ExportArticles        = "articles"
	ExportCategories      = "categories"
	ExportCurrencies      = "currencies"
	ExportLocations       = "locations"
	ExportStatuses        = "statuses"
	ExportWarehouses      = "warehouses"
	ExportBarcodeMappings = "barcodemappings"
)

type exportFunc func(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error)

// CSVExportUseCase serializa cada tabla como cabecera fija más una fila por registro.
type CSVExportUseCase struct {
	repos   repository.Repositories
	exports map[string]exportFunc
}

// NewCSVExportUseCase construye el caso de uso.
func NewCSVExportUseCase(repos repository.Repositories) *CSVExportUseCase {
	return &CSVExportUseCase{
		repos: repos,
		exports: map[string]exportFunc{
			ExportArticles:        exportArticles,
			ExportCategories:      exportCategories,
			ExportCurrencies:      exportCurrencies,
			ExportLocations:       exportLocations,
			ExportStatuses:        exportStatuses,
			ExportWarehouses:      exportWarehouses,
			ExportBarcodeMappings: exportBarcodeMappings,
		},
	}
}

// FileName nombre del adjunto para un recurso.
func FileName(resource string) string {
	return resource + ".csv"
}

// Export escribe el CSV del recurso en w.
func (uc *CSVExportUseCase) Export(ctx context.Context, resource string, w io.Writer) error {
	fn, ok := uc.exports[resource]
	if !ok {
		return fmt.Errorf("%w: recurso %q no exportable", domain.ErrNotFound, resource)
	}
	header, rows, err := fn(ctx, uc.repos)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func exportArticles(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Articles.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			id(a.ID), a.Description, categoryDesc(a), a.Amount.String(), currencyCode(a), statusDesc(a),
		})
	}
	return []string{"Article Id", "Description", "Category Description", "Amount", "Currency", "Status"}, rows, nil
}

func exportCategories(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Categories.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{id(c.ID), c.Description})
	}
	return []string{"Category Id", "Description"}, rows, nil
}

func exportCurrencies(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Currencies.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{id(c.ID), c.CurrencyCode, c.Country})
	}
	return []string{"Currency Id", "Code", "Country"}, rows, nil
}

func exportLocations(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Locations.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, l := range list {
		rows = append(rows, []string{id(l.ID), l.Aisle, strconv.Itoa(l.Shelf), strconv.Itoa(l.Tray)})
	}
	return []string{"Location Id", "Aisle", "Shelf", "Tray"}, rows, nil
}

func exportStatuses(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Statuses.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{id(s.ID), s.Description})
	}
	return []string{"Status Id", "Description"}, rows, nil
}

func exportBarcodeMappings(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.BarcodeMappings.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		rows = append(rows, []string{id(m.ID), m.EAN, m.Description})
	}
	return []string{"Barcode Id", "EAN", "Description"}, rows, nil
}

func exportWarehouses(ctx context.Context, repos repository.Repositories) ([]string, [][]string, error) {
	list, err := repos.Warehouses.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]string, 0, len(list))
	for _, w := range list {
		a := w.Article
		if a == nil {
			a = &entity.Article{}
		}
		l := w.Location
		if l == nil {
			l = &entity.Location{}
		}
		country := ""
		if a.Currency != nil {
			country = a.Currency.Country
		}
		rows = append(rows, []string{
			id(w.ID), strconv.Itoa(w.Quantity),
			a.Description, categoryDesc(a), a.Amount.String(), currencyCode(a), country, statusDesc(a),
			l.Aisle, strconv.Itoa(l.Shelf), strconv.Itoa(l.Tray),
		})
	}
	return []string{
		"Warehouse Id", "Quantity", "Article", "Category", "Amount", "CurrencyCode",
		"Country", "Status", "Aisle", "Shelf", "Tray",
	}, rows, nil
}

func categoryDesc(a *entity.Article) string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Description
}

func currencyCode(a *entity.Article) string {
	if a.Currency == nil {
		return ""
	}
	return a.Currency.CurrencyCode
}

func statusDesc(a *entity.Article) string {
	if a.Status == nil {
		return ""
	}
	return a.Status.Description
}

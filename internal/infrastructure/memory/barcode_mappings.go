package memory

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.BarcodeMappingRepository = (*BarcodeMappingRepo)(nil)

// BarcodeMappingRepo repositorio de códigos de barras en memoria.
type BarcodeMappingRepo struct{ s session }

func (t *tables) barcodeBy(match func(entity.BarcodeMapping) bool) (entity.BarcodeMapping, bool) {
	return lookup(t.barcodes, match)
}

func (r *BarcodeMappingRepo) Create(_ context.Context, m *entity.BarcodeMapping) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.barcodeBy(func(o entity.BarcodeMapping) bool {
			return o.EAN == m.EAN && o.Description == m.Description
		}); ok {
			return duplicate("Barcode mapping")
		}
		m.ID = t.nextID("barcode_mapping")
		t.barcodes[m.ID] = *m
		return nil
	})
}

func (r *BarcodeMappingRepo) GetByID(_ context.Context, id int64) (*entity.BarcodeMapping, error) {
	var out *entity.BarcodeMapping
	err := r.s.read(func(t *tables) error {
		if m, ok := t.barcodes[id]; ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *BarcodeMappingRepo) GetByEAN(_ context.Context, ean string) (*entity.BarcodeMapping, error) {
	var out *entity.BarcodeMapping
	err := r.s.read(func(t *tables) error {
		if m, ok := t.barcodeBy(func(o entity.BarcodeMapping) bool { return o.EAN == ean }); ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *BarcodeMappingRepo) GetByEANAndDescription(_ context.Context, ean, desc string) (*entity.BarcodeMapping, error) {
	var out *entity.BarcodeMapping
	err := r.s.read(func(t *tables) error {
		if m, ok := t.barcodeBy(func(o entity.BarcodeMapping) bool {
			return o.EAN == ean && o.Description == desc
		}); ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *BarcodeMappingRepo) Update(_ context.Context, m *entity.BarcodeMapping) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.barcodes[m.ID]
		if !ok {
			return missing("barcode mapping", m.ID)
		}
		if _, ok := t.barcodeBy(func(o entity.BarcodeMapping) bool {
			return o.ID != m.ID && o.EAN == m.EAN && o.Description == m.Description
		}); ok {
			return duplicate("Barcode mapping")
		}
		m.CreatedTimestamp = old.CreatedTimestamp
		m.Version = old.Version + 1
		t.barcodes[m.ID] = *m
		return nil
	})
}

func (r *BarcodeMappingRepo) List(_ context.Context) ([]*entity.BarcodeMapping, error) {
	var out []*entity.BarcodeMapping
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.barcodes) {
			m := t.barcodes[id]
			out = append(out, &m)
		}
		return nil
	})
	return out, err
}

func (r *BarcodeMappingRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.barcodes, id)
		return nil
	})
}

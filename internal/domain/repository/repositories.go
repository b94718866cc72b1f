package repository

// Repositories agrupa los repositorios atados a una misma unidad de trabajo (pool o transacción).
type Repositories struct {
	Statuses        StatusRepository
	Categories      CategoryRepository
	Currencies      CurrencyRepository
	Locations       LocationRepository
	Articles        ArticleRepository
	Warehouses      WarehouseRepository
	BarcodeMappings BarcodeMappingRepository
}

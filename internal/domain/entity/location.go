package entity

import "fmt"

// Location posición física en el almacén. Clave natural: (Aisle, Shelf, Tray).
type Location struct {
	Base
	Aisle string
	Shelf int
	Tray  int
}

// Label devuelve la posición en forma "A-1-2".
func (l *Location) Label() string {
	return fmt.Sprintf("%s-%d-%d", l.Aisle, l.Shelf, l.Tray)
}

// models/service_type.go
package models

// ServiceType represents a service offered by the shop.
type ServiceType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"` // CLP
}

// serviceCatalogue is the fixed menu of services with prices in CLP.
var serviceCatalogue = []ServiceType{
	{ID: "corte_clasico", Name: "Corte Clásico", Price: 9000},
	{ID: "corte_moderno", Name: "Corte Moderno", Price: 10000},
	{ID: "barba", Name: "Perfilado de Barba", Price: 5000},
	{ID: "cejas", Name: "Perfilado de Cejas", Price: 2000},
}

// ServiceCatalogue returns the bookable services.
func ServiceCatalogue() []ServiceType {
	out := make([]ServiceType, len(serviceCatalogue))
	copy(out, serviceCatalogue)
	return out
}

// ServiceByID looks up a service; ok is false for unknown IDs.
func ServiceByID(id string) (ServiceType, bool) {
	for _, s := range serviceCatalogue {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceType{}, false
}

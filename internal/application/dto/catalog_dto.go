package dto

// Fuentes posibles de una consulta de barcode.
const (
	LookupSourceInternal = "internal_catalog"
	LookupSourceExternal = "external"
)

// LookupResponse resultado de la búsqueda por código de barras. Found=false
// es un resultado normal (producto desconocido), nunca un error HTTP.
type LookupResponse struct {
	Found   bool   `json:"found"`
	Name    string `json:"name,omitempty"`
	PLU     string `json:"plu,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
}

package supply

// Supply is a consumable stock record (insumo) as served upstream.
type Supply struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Category    string `json:"categoria"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
	MinStock    int    `json:"stock_minimo"`
}

// Critical reports whether the stock has fallen to or below its minimum.
func (s Supply) Critical() bool {
	return s.MinStock > 0 && s.Quantity <= s.MinStock
}

type WritePayload struct {
	Name        string `json:"nombre"`
	Category    string `json:"categoria,omitempty"`
	Description string `json:"descripcion,omitempty"`
	Quantity    int    `json:"cantidad"`
	MinStock    int    `json:"stock_minimo,omitempty"`
}

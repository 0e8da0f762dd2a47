package dashboard

// Metrics is the upstream's aggregate dashboard payload.
type Metrics struct {
	KPIs       KPIs       `json:"kpis"`
	UsageChart UsageChart `json:"grafico_equipos_uso"`
	StockChart []StockBar `json:"grafico_stock_general"`
}

type KPIs struct {
	TotalEquipment int `json:"total_equipos"`
	TotalUsers     int `json:"total_usuarios"`
	IdleEquipment  int `json:"equipos_sin_uso"`
	TotalSupplies  int `json:"total_insumos"`
}

type UsageChart struct {
	InUse int `json:"en_uso"`
	Idle  int `json:"sin_uso"`
}

type StockBar struct {
	Type  string `json:"tipo"`
	Count int    `json:"cantidad"`
}

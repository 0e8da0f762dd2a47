package dashboard

import (
	"net/http"

	"github.com/inventra/inventra/internal/rest"
)

// chartPalette is the fixed color rotation the dashboard's charts cycle
// through.
var chartPalette = []string{
	"#1E88E5", "#43A047", "#FFB300", "#7E57C2",
	"#e74c3c", "#00ACC1", "#C0CA33", "#F06292",
}

type Handler struct {
	service  Service
	failures *rest.FailureWriter
}

func NewHandler(service Service, failures *rest.FailureWriter) *Handler {
	return &Handler{service: service, failures: failures}
}

type MetricsResponse struct {
	KPIs       KPIs         `json:"kpis"`
	UsageChart UsageChart   `json:"usage"`
	StockChart []ColoredBar `json:"stockByType"`
}

type ColoredBar struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Metrics(r.Context())
	if err != nil {
		h.failures.Write(w, err)
		return
	}
	bars := make([]ColoredBar, 0, len(m.StockChart))
	for i, bar := range m.StockChart {
		bars = append(bars, ColoredBar{
			Type:  bar.Type,
			Count: bar.Count,
			Color: chartPalette[i%len(chartPalette)],
		})
	}
	rest.WriteJSON(w, http.StatusOK, MetricsResponse{
		KPIs:       m.KPIs,
		UsageChart: m.UsageChart,
		StockChart: bars,
	})
}

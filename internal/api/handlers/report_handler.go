package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gecf-kip/insight/internal/report"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler { return &ReportHandler{} }

// GenerateReport renders the selected summaries as a downloadable PDF.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var entries []report.Entry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(entries) == 0 {
		http.Error(w, "no reports selected", http.StatusBadRequest)
		return
	}

	builder := report.NewBuilder()
	for _, e := range entries {
		builder.AddEntry(e)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="GECF_News_Report.pdf"`)
	if err := builder.Output(w); err != nil {
		http.Error(w, fmt.Sprintf("report generation failed: %v", err), http.StatusInternalServerError)
	}
}

package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	generate_excel "atelier/internal/service/generate-excel"
	"atelier/internal/storage"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, filter generate_excel.ReportFilter) ([]byte, error)
}

// GenerateReportExcel streams the order report workbook. An optional ?status=
// query narrows it to one workflow state.
func GenerateReportExcel(log *slog.Logger, service ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.generate_report.GenerateReportExcel"

		status := r.URL.Query().Get("status")
		if status != "" && !storage.IsKnownStatus(status) {
			http.Error(w, "Unknown status filter", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := service.GenerateExcel(ctx, generate_excel.ReportFilter{Status: status})
		if err != nil {
			log.Error("failed to generate report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("commandes-%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.Write(data)
	}
}

package generate_excel

import (
	"context"
	"fmt"

	"atelier/internal/service/derive"
	"atelier/internal/storage"

	"github.com/xuri/excelize/v2"
)

type ReportFilter struct {
	// Status limits the report to one order status; empty means all orders.
	Status string
}

type GenerateExcelStorage interface {
	GetAllOrders(ctx context.Context) ([]*storage.OrderWithClient, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateExcel builds the workshop order report: one row per order with its
// client, workflow state and the payment reconciliation columns.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, filter ReportFilter) ([]byte, error) {
	orders, err := g.storage.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	if filter.Status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == filter.Status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Commandes"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{
		"N° Commande", "Client", "Titre", "Statut", "Avancement %",
		"Date de livraison", "Prix total", "Montant payé", "Solde restant",
	}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, o := range orders {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), o.ID)
		f.SetCellValue(sheet, cellName(2, rowNum), o.ClientName)
		f.SetCellValue(sheet, cellName(3, rowNum), o.Title)
		f.SetCellValue(sheet, cellName(4, rowNum), o.Status)
		f.SetCellValue(sheet, cellName(5, rowNum), derive.ProgressPercent(o.Status))
		f.SetCellValue(sheet, cellName(6, rowNum), o.DeliveryDate.Format("02/01/2006"))
		f.SetCellValue(sheet, cellName(7, rowNum), o.TotalPrice)
		f.SetCellValue(sheet, cellName(8, rowNum), derive.TotalPaid(&o.Order))
		f.SetCellValue(sheet, cellName(9, rowNum), derive.Balance(&o.Order))
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

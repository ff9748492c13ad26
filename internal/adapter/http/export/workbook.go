// Package export renders finance reports as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"rutvans_api/internal/usecase"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetPeriod  = "Periodo"
	SheetRoutes  = "Rutas"
	SheetBalance = "Balance"
)

// Filename is the attachment name for a workbook covering from..to.
func Filename(wb usecase.FinanceWorkbook) string {
	return fmt.Sprintf("finanzas_%s_%s.xlsx", wb.From, wb.To)
}

// WriteFinanceWorkbook writes the period totals, route ranking and balance
// series as one sheet each.
func WriteFinanceWorkbook(w io.Writer, wb usecase.FinanceWorkbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPeriod); err != nil {
		return err
	}
	for _, name := range []string{SheetRoutes, SheetBalance} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	periodRows := [][]any{
		{"Desde", wb.From},
		{"Hasta", wb.To},
		{"Periodo", string(wb.Period)},
		{"Total", wb.Totals.Total.InexactFloat64()},
		{"Ventas", wb.Totals.Count},
		{"Promedio", wb.Totals.Average.InexactFloat64()},
	}
	if err := writeRows(f, SheetPeriod, periodRows); err != nil {
		return err
	}

	routeRows := [][]any{{"Ruta", "Monto", "Participacion"}}
	for _, r := range wb.Routes {
		routeRows = append(routeRows, []any{r.Name, r.Amount.InexactFloat64(), r.Share})
	}
	if err := writeRows(f, SheetRoutes, routeRows); err != nil {
		return err
	}

	balanceRows := [][]any{{"Fecha", "Balance"}}
	for _, p := range wb.Balance {
		balanceRows = append(balanceRows, []any{p.Date, p.Balance.InexactFloat64()})
	}
	if err := writeRows(f, SheetBalance, balanceRows); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

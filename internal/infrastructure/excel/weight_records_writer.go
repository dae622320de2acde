// Package excel exporta el libro de pesajes a XLSX con excelize.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ninjasaskeh/vr46/internal/application/report"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

var _ report.SpreadsheetWriter = (*WeightRecordsWriter)(nil)

// SheetName nombre de la hoja exportada.
const SheetName = "Weight Records"

const dateLayout = "2006-01-02 15:04:05"

var header = []interface{}{
	"ID", "Material", "Unit", "Gross Weight", "Tare Weight", "Net Weight",
	"Vehicle", "Operator", "Status", "Entry Date", "Weighing Date",
}

// WeightRecordsWriter implementa report.SpreadsheetWriter.
type WeightRecordsWriter struct{}

// NewWeightRecordsWriter construye el writer.
func NewWeightRecordsWriter() *WeightRecordsWriter { return &WeightRecordsWriter{} }

// WriteWeightRecords escribe cabecera + una fila por registro y devuelve el XLSX.
func (w *WeightRecordsWriter) WriteWeightRecords(_ context.Context, records []*entity.WeightRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, SheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	sheet = SheetName

	hdr := header
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, bold); err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	for i, r := range records {
		weighing := ""
		if r.WeighingDate != nil {
			weighing = r.WeighingDate.UTC().Format(dateLayout)
		}
		gross, _ := r.GrossWeight.Float64()
		tare, _ := r.TareWeight.Float64()
		net, _ := r.NetWeight.Float64()
		row := []interface{}{
			r.ID,
			r.MaterialName,
			r.MaterialUnit,
			gross,
			tare,
			net,
			r.VehicleNumber,
			r.OperatorName,
			string(r.Status),
			r.EntryDate.UTC().Format(dateLayout),
			weighing,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// Package report flattens booking rows into downloadable files. Both
// generators are pure: they take the rows in fetch order and return the
// whole file as a byte slice.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"stayhub/internal/domains/booking/model"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName     = "Bookings"
	documentTitle = "Booking List"
)

var columnHeaders = []string{"ID", "User Name", "User Address", "Booking Date", "Place ID"}

// Column widths of the document table, in mm.
var columnWidths = []float64{20, 40, 50, 40, 20}

// Spreadsheet serializes the bookings into a single-sheet OOXML workbook:
// a header row followed by one row per booking. An empty input yields a
// header-only sheet.
func Spreadsheet(bookings []model.Booking) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(columnHeaders))
	for index, name := range columnHeaders {
		header[index] = name
	}

	if err := workbook.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for index, booking := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", index+2, err)
		}

		row := []any{booking.ID, booking.UserName, booking.UserAddress, booking.BookingDate, booking.PlaceID}
		if err := workbook.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", index+2, err)
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

// Document renders the bookings as a fixed-layout PDF table: a centered
// title, a bordered header row and one bordered row per booking. Text is
// rendered in the renderer's single-byte cp1252 character set.
func Document(bookings []model.Booking) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, documentTitle, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)

	for index, name := range columnHeaders {
		pdf.CellFormat(columnWidths[index], 8, name, "1", 0, "C", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)

	for _, booking := range bookings {
		cells := []string{
			strconv.Itoa(booking.ID),
			booking.UserName,
			booking.UserAddress,
			booking.BookingDate,
			strconv.Itoa(booking.PlaceID),
		}

		for index, cell := range cells {
			pdf.CellFormat(columnWidths[index], 8, cell, "1", 0, "", false, 0, "")
		}

		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}

	return buffer.Bytes(), nil
}

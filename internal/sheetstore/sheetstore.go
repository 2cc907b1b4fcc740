package sheetstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RowStore — минимальный интерфейс табличного хранилища, который нужен очереди:
// прочитать диапазон, дописать строку в конец, переписать одну строку на месте.
// За интерфейсом живёт Google Sheets, в тестах — хранилище в памяти.
type RowStore interface {
	Read(ctx context.Context, rangeRef string) ([][]string, error)
	Append(ctx context.Context, rangeRef string, row []string) error
	Update(ctx context.Context, rowRef string, row []string) error
}

// SheetsStore реализует RowStore поверх Google Sheets API v4.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New создаёт клиент Sheets по JSON сервисного аккаунта.
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("создание клиента Sheets: %w", err)
	}
	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *SheetsStore) Read(ctx context.Context, rangeRef string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rangeRef).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("чтение диапазона %s: %w", rangeRef, err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *SheetsStore) Append(ctx context.Context, rangeRef string, row []string) error {
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rangeRef, toValueRange(row)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("добавление строки в %s: %w", rangeRef, err)
	}
	return nil
}

func (s *SheetsStore) Update(ctx context.Context, rowRef string, row []string) error {
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rowRef, toValueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("обновление строки %s: %w", rowRef, err)
	}
	return nil
}

func toValueRange(row []string) *sheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{cells}}
}

package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

var ErrSpreadsheetNotFound = errors.New("sheets: planilha não encontrada")

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// SpreadsheetService reúne as chamadas às APIs do Google usadas pelo destino
type SpreadsheetService interface {
	FindSpreadsheetID(ctx context.Context, name string) (string, error)
	GetWorksheetID(ctx context.Context, spreadsheetID, title string) (int64, bool, error)
	AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, columns int64) (int64, error)
	ClearWorksheet(ctx context.Context, spreadsheetID, title string) error
	ResizeWorksheet(ctx context.Context, spreadsheetID string, sheetID, rows, columns int64) error
	UpdateValues(ctx context.Context, spreadsheetID, title string, values [][]interface{}) error
}

// GoogleService implementa SpreadsheetService com as APIs Sheets v4 e Drive v3
type GoogleService struct {
	sheets *gsheets.Service
	drive  *drive.Service
}

// NewGoogleService autentica com o JSON de uma service account
func NewGoogleService(ctx context.Context, credentialsFile string) (*GoogleService, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "sheets: erro ao ler credenciais %s", credentialsFile)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sheets: credenciais inválidas")
	}

	sheetsService, err := gsheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sheets: erro ao criar cliente do Sheets")
	}

	driveService, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sheets: erro ao criar cliente do Drive")
	}

	return &GoogleService{
		sheets: sheetsService,
		drive:  driveService,
	}, nil
}

func (s *GoogleService) FindSpreadsheetID(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", "\\'"), spreadsheetMimeType)

	list, err := s.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if len(list.Files) == 0 {
		return "", pkgerrors.Wrap(ErrSpreadsheetNotFound, name)
	}

	return list.Files[0].Id, nil
}

func (s *GoogleService) GetWorksheetID(ctx context.Context, spreadsheetID, title string) (int64, bool, error) {
	spreadsheet, err := s.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, false, err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, true, nil
		}
	}

	return 0, false, nil
}

func (s *GoogleService) AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, columns int64) (int64, error) {
	resp, err := s.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{
					Title: title,
					GridProperties: &gsheets.GridProperties{
						RowCount:    rows,
						ColumnCount: columns,
					},
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, err
	}

	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return 0, fmt.Errorf("sheets: resposta sem a aba criada")
	}

	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (s *GoogleService) ClearWorksheet(ctx context.Context, spreadsheetID, title string) error {
	_, err := s.sheets.Spreadsheets.Values.Clear(spreadsheetID, quoteTitle(title), &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func (s *GoogleService) ResizeWorksheet(ctx context.Context, spreadsheetID string, sheetID, rows, columns int64) error {
	_, err := s.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
				Properties: &gsheets.SheetProperties{
					SheetId: sheetID,
					GridProperties: &gsheets.GridProperties{
						RowCount:    rows,
						ColumnCount: columns,
					},
					// a primeira aba tem id 0, que seria omitido
					ForceSendFields: []string{"SheetId"},
				},
				Fields: "gridProperties(rowCount,columnCount)",
			},
		}},
	}).Context(ctx).Do()
	return err
}

func (s *GoogleService) UpdateValues(ctx context.Context, spreadsheetID, title string, values [][]interface{}) error {
	_, err := s.sheets.Spreadsheets.Values.Update(spreadsheetID, quoteTitle(title)+"!A1", &gsheets.ValueRange{
		Values: values,
	}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

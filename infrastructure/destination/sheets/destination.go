package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/patrickmn/go-cache"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"google.golang.org/api/googleapi"
)

const spreadsheetIDTTL = time.Hour

// Destination substitui o conteúdo da aba configurada na planilha "<código> Ads (Auto)"
type Destination struct {
	service        SpreadsheetService
	nameFormat     string
	worksheetTitle string
	maxRetries     int
	spreadsheetIDs *cache.Cache
	newBackOff     func() backoff.BackOff
}

func NewDestination(service SpreadsheetService, cfg config.Destination) *Destination {
	return &Destination{
		service:        service,
		nameFormat:     cfg.SpreadsheetNameFormat,
		worksheetTitle: cfg.WorksheetTitle,
		maxRetries:     cfg.SheetsMaxRetries,
		spreadsheetIDs: cache.New(spreadsheetIDTTL, 2*spreadsheetIDTTL),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// WithBackOff troca a política de espera entre tentativas
func (d *Destination) WithBackOff(newBackOff func() backoff.BackOff) *Destination {
	d.newBackOff = newBackOff
	return d
}

// SpreadsheetName monta o nome da planilha a partir do código de destino
func (d *Destination) SpreadsheetName(target string) string {
	return fmt.Sprintf(d.nameFormat, target)
}

func (d *Destination) Sync(ctx context.Context, table *domain.InsightTable, target string) (err error) {
	name := d.SpreadsheetName(target)
	logger := logrus.WithFields(logrus.Fields{
		"target":      target,
		"spreadsheet": name,
		"worksheet":   d.worksheetTitle,
	})

	// planilha removida ou recriada: o ID em cache deixa de valer
	defer func() {
		if isNotFound(err) {
			d.spreadsheetIDs.Delete(name)
			logger.Warn("sheets: planilha não encontrada, ID removido do cache")
		}
	}()

	spreadsheetID, err := d.spreadsheetID(ctx, name)
	if err != nil {
		return err
	}

	values := toValues(table.Records())
	rows := int64(len(values))
	columns := int64(len(table.Columns))

	var sheetID int64
	var found bool
	err = d.retry(ctx, "get_worksheet", func() error {
		var getErr error
		sheetID, found, getErr = d.service.GetWorksheetID(ctx, spreadsheetID, d.worksheetTitle)
		return getErr
	})
	if err != nil {
		return pkgerrors.Wrap(err, "sheets: erro ao buscar aba")
	}

	if !found {
		logger.Info("sheets: aba não encontrada, criando")
		err = d.retry(ctx, "add_worksheet", func() error {
			var addErr error
			sheetID, addErr = d.service.AddWorksheet(ctx, spreadsheetID, d.worksheetTitle, rows, columns)
			return addErr
		})
		if err != nil {
			return pkgerrors.Wrap(err, "sheets: erro ao criar aba")
		}
	} else {
		err = d.retry(ctx, "clear_worksheet", func() error {
			return d.service.ClearWorksheet(ctx, spreadsheetID, d.worksheetTitle)
		})
		if err != nil {
			return pkgerrors.Wrap(err, "sheets: erro ao limpar aba")
		}

		err = d.retry(ctx, "resize_worksheet", func() error {
			return d.service.ResizeWorksheet(ctx, spreadsheetID, sheetID, rows, columns)
		})
		if err != nil {
			return pkgerrors.Wrap(err, "sheets: erro ao redimensionar aba")
		}
	}

	err = d.retry(ctx, "update_values", func() error {
		return d.service.UpdateValues(ctx, spreadsheetID, d.worksheetTitle, values)
	})
	if err != nil {
		return pkgerrors.Wrap(err, "sheets: erro ao gravar valores")
	}

	logger.WithField("rows", rows-1).Info("sheets: aba atualizada")

	return nil
}

func (d *Destination) spreadsheetID(ctx context.Context, name string) (string, error) {
	if id, ok := d.spreadsheetIDs.Get(name); ok {
		return id.(string), nil
	}

	var id string
	err := d.retry(ctx, "find_spreadsheet", func() error {
		var findErr error
		id, findErr = d.service.FindSpreadsheetID(ctx, name)
		return findErr
	})
	if err != nil {
		return "", pkgerrors.Wrapf(err, "sheets: erro ao abrir planilha %q", name)
	}

	d.spreadsheetIDs.Set(name, id, cache.DefaultExpiration)
	return id, nil
}

func (d *Destination) retry(ctx context.Context, operation string, fn func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(d.newBackOff(), uint64(max(d.maxRetries, 0))), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}

		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"attempt":   attempt,
			"error":     err.Error(),
		}).Warn("sheets: erro transitório na API do Google")
		return err
	}, policy)
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

func isRetryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

// toValues converte nulos em células vazias
func toValues(records [][]any) [][]interface{} {
	values := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, value := range record {
			if value == nil {
				row[j] = ""
				continue
			}
			row[j] = value
		}
		values[i] = row
	}
	return values
}

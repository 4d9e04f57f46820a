package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

// Destination grava cada destino em <dir>/<código>.csv, substituindo o arquivo anterior
type Destination struct {
	dir string
}

func NewDestination(dir string) *Destination {
	return &Destination{dir: dir}
}

func (d *Destination) Path(target string) string {
	return filepath.Join(d.dir, target+".csv")
}

func (d *Destination) Sync(ctx context.Context, table *domain.InsightTable, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return errors.Wrapf(err, "csvfile: erro ao criar diretório %s", d.dir)
	}

	path := d.Path(target)
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "csvfile: erro ao criar %s", tmpPath)
	}

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(file))
	for _, record := range table.Records() {
		if err := writer.Write(toStrings(record)); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return errors.Wrap(err, "csvfile: erro ao escrever linha")
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "csvfile: erro ao finalizar arquivo")
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "csvfile: erro ao fechar arquivo")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "csvfile: erro ao substituir %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"target": target,
		"path":   path,
		"rows":   table.Len(),
	}).Info("csvfile: arquivo atualizado")

	return nil
}

func toStrings(record []any) []string {
	values := make([]string, len(record))
	for i, value := range record {
		switch v := value.(type) {
		case nil:
			values[i] = ""
		case string:
			values[i] = v
		case float64:
			values[i] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			values[i] = fmt.Sprint(v)
		}
	}
	return values
}

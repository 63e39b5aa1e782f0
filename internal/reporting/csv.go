package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nft-sales-fetcher/internal/domain"
)

// SalesHeader is the header row of the sales CSV. There is no index column.
var SalesHeader = []string{"id", "collection", "tokenId", "price", "paymentToken", "timestamp", "txHash", "datetime"}

// RenderSalesCSV writes sales as CSV to w, header first, one row per sale in order.
func RenderSalesCSV(w io.Writer, sales []domain.SaleRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(SalesHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range sales {
		row := []string{
			s.ID,
			s.Collection,
			s.TokenID,
			formatPrice(s.Price),
			s.PaymentToken,
			strconv.FormatInt(s.Timestamp, 10),
			s.TxHash,
			domain.FormatDatetime(s.Datetime),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", s.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatPrice writes the shortest decimal form of p, keeping a ".0" on whole
// values so the column always reads as a float.
func formatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteSalesCSV replaces the file at path with the rendered sales.
// The CSV is written to a temp file in the same directory and renamed over
// path, so path either keeps its old contents or holds the complete new file.
func WriteSalesCSV(path string, sales []domain.SaleRecord) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := RenderSalesCSV(tmp, sales); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	committed = true
	return nil
}

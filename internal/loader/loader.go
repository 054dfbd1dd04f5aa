package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/internal/conf"
	"github.com/gostonefire/bidhashmap/internal/utils"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
	"time"
)

// Inserter - Anything bids can be loaded into, typically a *bidhashmap.BidHashMap
type Inserter interface {
	Insert(bid bidhashmap.Bid) error
}

// LoadResult - Outcome of a load
//   - Loaded is the number of bids inserted
//   - Skipped is the number of data rows rejected as malformed
//   - Elapsed is the time spent reading and inserting
type LoadResult struct {
	Loaded  int64
	Skipped int64
	Elapsed time.Duration
}

// Loader - Reads bids from CSV data in the eBid monthly sales layout and inserts them.
// The first row is a header and is never loaded.
type Loader struct {
	logger *zap.Logger
}

// NewLoader - Returns a pointer to a new Loader, a nil logger disables logging
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadFile - Opens the CSV file at path and loads all valid rows into table
func (L *Loader) LoadFile(path string, table Inserter) (result LoadResult, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("error while opening csv file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	L.logger.Info("loading bids", zap.String("path", path))

	return L.LoadBids(f, table)
}

// LoadBids - Reads CSV data from r and inserts every valid row into table.
// Rows with too few columns, a non numeric bid id or an unparsable amount are skipped and logged, they never
// reach the table.
//
// It returns:
//   - result holds number of loaded and skipped rows
//   - err is a standard error if reading failed, rows inserted before the failure stay in the table
func (L *Loader) LoadBids(r io.Reader, table Inserter) (result LoadResult, err error) {
	start := time.Now()
	defer func() { result.Elapsed = time.Since(start) }()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// Header row
	_, err = reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		err = fmt.Errorf("error while reading csv header: %w", err)
		return
	}

	for {
		var record []string
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Skipped++
			L.logger.Warn("skipping malformed csv row", zap.Int("line", parseErr.Line), zap.Error(err))
			continue
		}
		if err != nil {
			err = fmt.Errorf("error while reading csv: %w", err)
			return
		}

		line, _ := reader.FieldPos(0)

		var bid bidhashmap.Bid
		bid, err = rowToBid(record)
		if err != nil {
			result.Skipped++
			L.logger.Warn("skipping invalid bid row", zap.Int("line", line), zap.Error(err))
			err = nil
			continue
		}

		err = table.Insert(bid)
		if err != nil {
			err = fmt.Errorf("error while inserting bid from line %d: %w", line, err)
			return
		}
		result.Loaded++
	}

	L.logger.Info("bids loaded",
		zap.Int64("loaded", result.Loaded),
		zap.Int64("skipped", result.Skipped),
		zap.Duration("elapsed", time.Since(start)))

	return
}

// rowToBid - Converts one CSV row to a Bid, validating bid id and amount
func rowToBid(record []string) (bid bidhashmap.Bid, err error) {
	if len(record) < conf.MinColumns {
		err = fmt.Errorf("row has %d columns, expected at least %d", len(record), conf.MinColumns)
		return
	}

	bidId := strings.TrimSpace(record[conf.BidIdColumn])
	_, err = utils.ParseBidId(bidId)
	if err != nil {
		return
	}

	amount, err := utils.ParseAmount(record[conf.AmountColumn])
	if err != nil {
		return
	}

	bid = bidhashmap.Bid{
		BidId:  bidId,
		Title:  strings.TrimSpace(record[conf.TitleColumn]),
		Fund:   strings.TrimSpace(record[conf.FundColumn]),
		Amount: amount,
	}

	return
}

package menu

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/internal/loader"
	"go.uber.org/zap"
	"io"
	"strings"
	"time"
)

// Table - The bid table operations the menu drives, satisfied by *bidhashmap.BidHashMap
type Table interface {
	loader.Inserter
	Search(bidId string) (bidhashmap.Bid, error)
	Remove(bidId string) error
	PrintAll(w io.Writer) error
}

// Dispatcher - Executes menu commands against an explicit table, writing user facing output to out.
type Dispatcher struct {
	table     Table
	loader    *loader.Loader
	out       io.Writer
	logger    *zap.Logger
	csvPath   string
	searchKey string
}

// NewDispatcher - Returns a pointer to a new Dispatcher
//   - table is the bid table to operate on
//   - out receives everything shown to the user
//   - logger is used for diagnostics, nil disables logging
//   - csvPath is the file LoadBids reads
//   - searchKey is the bid id FindBid and RemoveBid use when no key is given
func NewDispatcher(table Table, out io.Writer, logger *zap.Logger, csvPath, searchKey string) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		table:     table,
		loader:    loader.NewLoader(logger),
		out:       out,
		logger:    logger,
		csvPath:   csvPath,
		searchKey: searchKey,
	}
}

// Execute - Runs one command.
//   - cmd is the command to run
//   - key is the bid id for FindBid and RemoveBid, empty means the configured search key
//
// It returns:
//   - exit is true when the command was Exit
//   - err is a standard error, or a wrapped bhmerrors.ParseError for a non numeric key
func (D *Dispatcher) Execute(cmd Command, key string) (exit bool, err error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = D.searchKey
	}

	switch cmd {
	case LoadBids:
		err = D.loadBids()
	case DisplayAll:
		err = D.table.PrintAll(D.out)
	case FindBid:
		err = D.findBid(key)
	case RemoveBid:
		err = D.removeBid(key)
	case Exit:
		exit = true
	default:
		err = fmt.Errorf("unknown command %d", int(cmd))
	}

	return
}

// Run - Shows the menu and executes choices read line by line from in until Exit or end of input.
// A line holds a choice optionally followed by a bid id, e.g. "3 98109". Invalid choices and failed
// commands are reported and the loop continues.
func (D *Dispatcher) Run(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)

	for {
		D.printf("\n%sEnter choice: ", Usage())

		if !scanner.Scan() {
			err = scanner.Err()
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, parseErr := ParseCommand(fields[0])
		if parseErr != nil {
			D.printf("%s\n", parseErr)
			continue
		}

		var key string
		if len(fields) > 1 {
			key = fields[1]
		}

		exit, execErr := D.Execute(cmd, key)
		if execErr != nil {
			D.logger.Error("command failed", zap.Stringer("command", cmd), zap.Error(execErr))
			D.printf("Error: %s\n", execErr)
		}
		if exit {
			break
		}
	}

	D.printf("Good bye.\n")

	return
}

// DisplayBid - Writes one bid as "<id>: <title> | <amount> | <fund>"
func DisplayBid(w io.Writer, bid bidhashmap.Bid) {
	_, _ = fmt.Fprintln(w, bid.String())
}

func (D *Dispatcher) loadBids() (err error) {
	D.printf("Loading CSV file %s\n", D.csvPath)

	result, err := D.loader.LoadFile(D.csvPath, D.table)
	if err != nil {
		return
	}

	D.printf("%d bids read\n", result.Loaded)
	if result.Skipped > 0 {
		D.printf("%d rows skipped\n", result.Skipped)
	}
	D.printf("time: %.6f seconds\n", result.Elapsed.Seconds())

	return
}

func (D *Dispatcher) findBid(key string) (err error) {
	start := time.Now()
	bid, err := D.table.Search(key)
	D.logger.Debug("search done", zap.String("bidId", key), zap.Duration("elapsed", time.Since(start)))

	if errors.Is(err, bhmerrors.NoRecordFound{}) {
		D.printf("Bid Id %s not found.\n", key)
		err = nil
		return
	}
	if err != nil {
		return
	}

	DisplayBid(D.out, bid)

	return
}

func (D *Dispatcher) removeBid(key string) (err error) {
	start := time.Now()
	err = D.table.Remove(key)
	D.logger.Debug("remove done", zap.String("bidId", key), zap.Duration("elapsed", time.Since(start)))

	return
}

func (D *Dispatcher) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(D.out, format, args...)
}

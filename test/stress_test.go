//go:build stress

package test

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/internal/loader"
	"github.com/stretchr/testify/assert"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

const csvHeader = "ArticleTitle,ArticleID,Department,CloseDate,WinningBid,InventoryID,VehicleID,ReceiptNumber,Fund"

// createAndStoreTestdata - Writes amount bids in eBid CSV layout with ids from offset and up in random order
func createAndStoreTestdata(amount, offset int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	_, err = fmt.Fprintln(f, csvHeader)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	for _, i := range rand.Perm(amount) {
		id := strconv.Itoa(offset + i)
		amt := fmt.Sprintf("$%d.%02d", rand.Intn(10000), rand.Intn(100))
		err = w.Write([]string{"Title " + id, id, "Dept", "12/01/16", amt, "0", "0", "0", "Fund " + strconv.Itoa(i%7)})
		if err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// readTestdata - Calls fn for every bid in a test data file
func readTestdata(fileName string, fn func(bid bidhashmap.Bid) error) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	r := csv.NewReader(f)
	_, err = r.Read()
	if err != nil {
		return err
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		bid := bidhashmap.Bid{BidId: record[1], Title: record[0], Fund: record[8]}
		if err = fn(bid); err != nil {
			return err
		}
	}

	return nil
}

func popTestdata(fileName string, bhm *bidhashmap.BidHashMap) error {
	return readTestdata(fileName, func(bid bidhashmap.Bid) error {
		popped, err := bhm.Pop(bid.BidId)
		if err != nil {
			return err
		}
		if popped.Title != bid.Title || popped.Fund != bid.Fund {
			return fmt.Errorf("popped wrong bid %s", bid.BidId)
		}
		return nil
	})
}

func getTestdata(fileName string, bhm *bidhashmap.BidHashMap, shouldNotExist bool) error {
	return readTestdata(fileName, func(bid bidhashmap.Bid) error {
		found, err := bhm.Search(bid.BidId)
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("search should not find bid %s", bid.BidId)
			} else if !errors.Is(err, bhmerrors.NoRecordFound{}) {
				return err
			}
			return nil
		}
		if err != nil {
			return err
		}
		if found.Title != bid.Title || found.Fund != bid.Fund {
			return fmt.Errorf("found wrong bid %s", bid.BidId)
		}
		return nil
	})
}

type TestCaseStressTest struct {
	name      string
	buckets   int64
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for several table sizes", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{name: "DefaultSize", buckets: 179, nTestdata: 20000},
			{name: "LargeTable", buckets: 100003, nTestdata: 200000},
			{name: "SingleBucket", buckets: 1, nTestdata: 2000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of stress for %s", test.name), func(t *testing.T) {
				// Prepare test data
				rand.Seed(123)
				dir := t.TempDir()
				files := make([]string, 3)
				for i := range files {
					files[i] = filepath.Join(dir, fmt.Sprintf("testdata_%d.csv", i+1))
					err := createAndStoreTestdata(test.nTestdata, i*test.nTestdata, files[i])
					assert.NoError(t, err, "create testdata %d", i+1)
				}

				// Prepare bid hash map
				bhm, _, err := bidhashmap.NewBidHashMap(test.buckets, nil)
				assert.NoError(t, err, "create bid hash map")
				l := loader.NewLoader(nil)

				// Load first two sets of test data
				_, err = l.LoadFile(files[0], bhm)
				assert.NoError(t, err, "load test set 1")
				_, err = l.LoadFile(files[1], bhm)
				assert.NoError(t, err, "load test set 2")

				// Remove first set
				err = popTestdata(files[0], bhm)
				assert.NoError(t, err, "pop test set 1")

				// Load third set of test data
				_, err = l.LoadFile(files[2], bhm)
				assert.NoError(t, err, "load test set 3")

				// Check all three test sets
				err = getTestdata(files[0], bhm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(files[1], bhm, false)
				assert.NoError(t, err, "get test set 2")
				err = getTestdata(files[2], bhm, false)
				assert.NoError(t, err, "get test set 3")

				// Remove second set
				err = popTestdata(files[1], bhm)
				assert.NoError(t, err, "pop test set 2")

				// Check all three test sets
				err = getTestdata(files[0], bhm, true)
				assert.NoError(t, err, "get test set 1, should not exist")
				err = getTestdata(files[1], bhm, true)
				assert.NoError(t, err, "get test set 2, should not exist")
				err = getTestdata(files[2], bhm, false)
				assert.NoError(t, err, "get test set 3")

				// Get stats
				stat := bhm.Stat(true)
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Equal(t, bhm.Len(), stat.Records, "record count agrees with stat")
				assert.Len(t, bhm.Bids(), test.nTestdata, "enumeration agrees with stat")
				var sum int64
				for _, n := range stat.BucketDistribution {
					sum += n
				}
				assert.Equal(t, stat.Records, sum, "distribution sums to records")
			})
		}
	})
}

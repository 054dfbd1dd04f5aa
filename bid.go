package bidhashmap

import (
	"fmt"
	"github.com/gostonefire/bidhashmap/internal/utils"
)

// Bid - Represents one bid record
//   - BidId is the identifier, numeric in practice since it is parsed to an integer for hashing
//   - Title is the article title
//   - Fund is the fund code
//   - Amount is the winning bid amount
type Bid struct {
	BidId  string
	Title  string
	Fund   string
	Amount float64
}

// String - Returns the bid formatted for display as "<id>: <title> | <amount> | <fund>"
func (B Bid) String() string {
	return fmt.Sprintf("%s: %s | %s | %s", B.BidId, B.Title, utils.FormatAmount(B.Amount), B.Fund)
}

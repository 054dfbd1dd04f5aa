package conf

// DefaultTableSize - Number of buckets in a bid hash map unless otherwise configured, a prime for better spread
const DefaultTableSize int64 = 179

// DefaultCSVPath - CSV file with monthly sales bids loaded by the menu unless otherwise configured
const DefaultCSVPath string = "eBid_Monthly_Sales_Dec_2016.csv"

// DefaultSearchKey - Bid id used by the find and remove menu commands when no key is supplied
const DefaultSearchKey string = "98109"

// DefaultLogLevel - Log level used unless otherwise configured
const DefaultLogLevel string = "info"

// TitleColumn - CSV column holding the article title
const TitleColumn int = 0

// BidIdColumn - CSV column holding the bid (article) id
const BidIdColumn int = 1

// AmountColumn - CSV column holding the winning bid amount
const AmountColumn int = 4

// FundColumn - CSV column holding the fund code
const FundColumn int = 8

// MinColumns - Minimum number of columns a CSV row must have to be loaded
const MinColumns int = FundColumn + 1

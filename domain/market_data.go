package domain

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Ticker is a 24h trading summary for one instrument.
type Ticker struct {
	// High is the highest unit price traded in the last 24 hours.
	High decimal.Decimal `json:"high"`
	// Low is the lowest unit price traded in the last 24 hours.
	Low decimal.Decimal `json:"low"`
	// Vol is the quantity traded in the last 24 hours.
	Vol decimal.Decimal `json:"vol"`
	// Last is the unit price of the latest trade.
	Last decimal.Decimal `json:"last"`
	// Buy is the best bid.
	Buy decimal.Decimal `json:"buy"`
	// Sell is the best ask.
	Sell decimal.Decimal `json:"sell"`
	// Date is the Unix time (seconds) of the snapshot.
	Date int64 `json:"date"`
}

func (t Ticker) Time() time.Time {
	return time.Unix(t.Date, 0).UTC()
}

// PriceLevel is one aggregated offer of the order book. Its JSON form is
// the exchange's two element array [price, quantity].
type PriceLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

func (l PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]decimal.Decimal{l.Price, l.Quantity})
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair []decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("price level must have 2 elements, got %d", len(pair))
	}
	l.Price, l.Quantity = pair[0], pair[1]
	return nil
}

// OrderBook holds up to 1000 asks (lowest price first) and 1000 bids
// (highest price first). Every level already sums the quantity of all
// orders at that price.
type OrderBook struct {
	Asks []PriceLevel `json:"asks"`
	Bids []PriceLevel `json:"bids"`
}

// Trade is one executed transaction.
type Trade struct {
	// Date is the Unix time (seconds) of the execution.
	Date   int64           `json:"date"`
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"amount"`
	// TID grows monotonically per instrument and can be used as a cursor.
	TID uint64 `json:"tid"`
	// Side is the taker side of the trade.
	Side TradeSide `json:"type"`
}

func (t Trade) Time() time.Time {
	return time.Unix(t.Date, 0).UTC()
}

// DaySummary aggregates one calendar day of trading.
type DaySummary struct {
	Date    string          `json:"date"`
	Opening decimal.Decimal `json:"opening"`
	Closing decimal.Decimal `json:"closing"`
	Lowest  decimal.Decimal `json:"lowest"`
	Highest decimal.Decimal `json:"highest"`
	// Volume is expressed in the quote currency (BRL).
	Volume decimal.Decimal `json:"volume"`
	// Quantity is expressed in the base currency.
	Quantity decimal.Decimal `json:"quantity"`
	// Amount is the number of trades of the day.
	Amount   int64           `json:"amount"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

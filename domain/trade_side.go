package domain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// TradeSide tells which side's order executed the trade.
type TradeSide int

const (
	Buy TradeSide = iota + 1
	Sell
)

const (
	tradeSideBuy  = "buy"
	tradeSideSell = "sell"
)

var ErrUnknownTradeSide = errors.New("unknown trade side")

func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case tradeSideBuy:
		return Buy, nil
	case tradeSideSell:
		return Sell, nil
	}
	return 0, errors.Wrapf(ErrUnknownTradeSide, "%q", s)
}

func (s TradeSide) String() string {
	switch s {
	case Buy:
		return tradeSideBuy
	case Sell:
		return tradeSideSell
	}
	return "unknown"
}

func (s TradeSide) MarshalJSON() ([]byte, error) {
	if s != Buy && s != Sell {
		return nil, errors.Wrapf(ErrUnknownTradeSide, "%d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *TradeSide) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	side, err := ParseTradeSide(str)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

package mercado

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"bitbucket.org/novatechnologies/mercadobitcoin/domain"
)

// Wire payloads use pointers so that absent and null fields stay nil and
// fail the "required" check instead of decoding to zero.

type tickerResponse struct {
	Ticker *tickerPayload `json:"ticker" validate:"required"`
}

type tickerPayload struct {
	High *decimal.Decimal `json:"high" validate:"required"`
	Low  *decimal.Decimal `json:"low" validate:"required"`
	Vol  *decimal.Decimal `json:"vol" validate:"required"`
	Last *decimal.Decimal `json:"last" validate:"required"`
	Buy  *decimal.Decimal `json:"buy" validate:"required"`
	Sell *decimal.Decimal `json:"sell" validate:"required"`
	Date *int64           `json:"date" validate:"required"`
}

type orderBookResponse struct {
	Asks [][]*decimal.Decimal `json:"asks" validate:"required,dive,len=2,dive,required"`
	Bids [][]*decimal.Decimal `json:"bids" validate:"required,dive,len=2,dive,required"`
}

type tradePayload struct {
	Date   *int64           `json:"date" validate:"required"`
	Price  *decimal.Decimal `json:"price" validate:"required"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	TID    *uint64          `json:"tid" validate:"required"`
	Type   *string          `json:"type" validate:"required,oneof=buy sell"`
}

type daySummaryResponse struct {
	Date     *string          `json:"date" validate:"required"`
	Opening  *decimal.Decimal `json:"opening" validate:"required"`
	Closing  *decimal.Decimal `json:"closing" validate:"required"`
	Lowest   *decimal.Decimal `json:"lowest" validate:"required"`
	Highest  *decimal.Decimal `json:"highest" validate:"required"`
	Volume   *decimal.Decimal `json:"volume" validate:"required"`
	Quantity *decimal.Decimal `json:"quantity" validate:"required"`
	Amount   *int64           `json:"amount" validate:"required"`
	AvgPrice *decimal.Decimal `json:"avg_price" validate:"required"`
}

func (c *client) decodeTicker(u string, r *resty.Response) (ticker domain.Ticker, err error) {
	var theResponse tickerResponse
	if err = c.decode(u, r, &theResponse); err != nil {
		return
	}
	t := theResponse.Ticker
	ticker = domain.Ticker{
		High: *t.High,
		Low:  *t.Low,
		Vol:  *t.Vol,
		Last: *t.Last,
		Buy:  *t.Buy,
		Sell: *t.Sell,
		Date: *t.Date,
	}
	return
}

func (c *client) decodeOrderBook(u string, r *resty.Response) (book domain.OrderBook, err error) {
	var theResponse orderBookResponse
	if err = c.decode(u, r, &theResponse); err != nil {
		return
	}
	book.Asks = toPriceLevels(theResponse.Asks)
	book.Bids = toPriceLevels(theResponse.Bids)
	return
}

func toPriceLevels(pairs [][]*decimal.Decimal) []domain.PriceLevel {
	levels := make([]domain.PriceLevel, len(pairs))
	for i, p := range pairs {
		levels[i] = domain.PriceLevel{Price: *p[0], Quantity: *p[1]}
	}
	return levels
}

func (c *client) decodeTrades(u string, r *resty.Response) (trades []domain.Trade, err error) {
	var theResponse []tradePayload
	if err = json.Unmarshal(r.Body(), &theResponse); err != nil {
		err = &DecodeError{URL: u, Err: err}
		return
	}
	if theResponse == nil {
		err = &DecodeError{URL: u, Err: errors.New("expected an array of trades, got null")}
		return
	}

	trades = make([]domain.Trade, 0, len(theResponse))
	for i := range theResponse {
		p := &theResponse[i]
		if err = c.validate.Struct(p); err != nil {
			err = &DecodeError{URL: u, Err: errors.Wrapf(err, "trade #%d", i)}
			return nil, err
		}
		side, perr := domain.ParseTradeSide(*p.Type)
		if perr != nil {
			return nil, &DecodeError{URL: u, Err: perr}
		}
		trades = append(trades, domain.Trade{
			Date:   *p.Date,
			Price:  *p.Price,
			Amount: *p.Amount,
			TID:    *p.TID,
			Side:   side,
		})
	}
	return
}

func (c *client) decodeDaySummary(u string, r *resty.Response) (summary domain.DaySummary, err error) {
	var s daySummaryResponse
	if err = c.decode(u, r, &s); err != nil {
		return
	}
	summary = domain.DaySummary{
		Date:     *s.Date,
		Opening:  *s.Opening,
		Closing:  *s.Closing,
		Lowest:   *s.Lowest,
		Highest:  *s.Highest,
		Volume:   *s.Volume,
		Quantity: *s.Quantity,
		Amount:   *s.Amount,
		AvgPrice: *s.AvgPrice,
	}
	return
}

// decode unmarshals the whole body into v and checks its required fields.
func (c *client) decode(u string, r *resty.Response, v interface{}) error {
	if err := json.Unmarshal(r.Body(), v); err != nil {
		return &DecodeError{URL: u, Err: err}
	}
	if err := c.validate.Struct(v); err != nil {
		return &DecodeError{URL: u, Err: err}
	}
	return nil
}

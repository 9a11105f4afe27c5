package mercado

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidFilter = errors.New("invalid trades filter")

// TradesFilter narrows the trade history. TID returns trades after the given
// trade id, Since is its alias kept by the exchange for older callers. From
// and To bound the history by execution time.
type TradesFilter struct {
	TID   *uint64
	Since *uint64
	From  *time.Time
	To    *time.Time
}

// Validate checks the filter without touching the network. A nil filter is valid.
func (f *TradesFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.TID != nil && f.Since != nil {
		return errors.Wrap(ErrInvalidFilter, "tid and since are mutually exclusive")
	}
	if f.To != nil && f.From == nil {
		return errors.Wrap(ErrInvalidFilter, "to requires from")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return errors.Wrapf(ErrInvalidFilter, "from %s is after to %s",
			f.From.UTC().Format(time.RFC3339), f.To.UTC().Format(time.RFC3339))
	}
	return nil
}

// pathSuffix renders From and To as Unix seconds path segments.
func (f *TradesFilter) pathSuffix() []string {
	if f == nil || f.From == nil {
		return nil
	}
	suffix := []string{strconv.FormatInt(f.From.Unix(), 10)}
	if f.To != nil {
		suffix = append(suffix, strconv.FormatInt(f.To.Unix(), 10))
	}
	return suffix
}

func (f *TradesFilter) query() url.Values {
	if f == nil {
		return nil
	}
	q := url.Values{}
	if f.TID != nil {
		q.Set("tid", strconv.FormatUint(*f.TID, 10))
	}
	if f.Since != nil {
		q.Set("since", strconv.FormatUint(*f.Since, 10))
	}
	return q
}

package mercado

import (
	"reflect"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestTradesFilter(t *testing.T) {
	from := time.Unix(1000, 0)
	to := time.Unix(2000, 0)
	tests := []struct {
		name       string
		filter     *TradesFilter
		wantErr    bool
		wantSuffix []string
		wantQuery  string
	}{
		{name: "nil"},
		{name: "empty", filter: &TradesFilter{}},
		{
			name:      "tid",
			filter:    &TradesFilter{TID: pointer.ToUint64(12)},
			wantQuery: "tid=12",
		},
		{
			name:      "since",
			filter:    &TradesFilter{Since: pointer.ToUint64(3)},
			wantQuery: "since=3",
		},
		{
			name:       "from",
			filter:     &TradesFilter{From: &from},
			wantSuffix: []string{"1000"},
		},
		{
			name:       "range with tid",
			filter:     &TradesFilter{TID: pointer.ToUint64(1), From: &from, To: &to},
			wantSuffix: []string{"1000", "2000"},
			wantQuery:  "tid=1",
		},
		{
			name:       "same instant",
			filter:     &TradesFilter{From: &from, To: &from},
			wantSuffix: []string{"1000", "1000"},
		},
		{name: "to only", filter: &TradesFilter{To: &to}, wantErr: true},
		{name: "inverted range", filter: &TradesFilter{From: &to, To: &from}, wantErr: true},
		{name: "tid and since", filter: &TradesFilter{TID: pointer.ToUint64(1), Since: pointer.ToUint64(1)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			assert.NoError(t, err)
			if got := tt.filter.pathSuffix(); !reflect.DeepEqual(got, tt.wantSuffix) {
				t.Errorf("pathSuffix() = %v, want %v", got, tt.wantSuffix)
			}
			assert.Equal(t, tt.wantQuery, tt.filter.query().Encode())
		})
	}
}

package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Instrument is a digital asset listed on the exchange.
type Instrument int

const (
	AAVE Instrument = iota
	ACMFT
	ACORDO01
	ASRFT
	ATMFT
	AXS
	BAL
	BARFT
	BAT
	BCH
	BTC
	CAIFT
	CHZ
	COMP
	CRV
	DAI
	DAL
	ENJ
	ETH
	GALFT
	GRT
	IMOB01
	JUVFT
	KNC
	LINK
	LTC
	MANA
	MBCONS01
	MBCONS02
	MBFP01
	MBFP02
	MBFP03
	MBFP04
	MBPRK01
	MBPRK02
	MBPRK03
	MBPRK04
	MBVASCO01
	MCO2
	MKR
	OGFT
	PAXG
	PSGFT
	REI
	REN
	SNX
	UMA
	UNI
	USDC
	WBX
	XRP
	YFI
	ZRX

	instrumentCount
)

var symbols = [...]string{
	AAVE:      "AAVE",
	ACMFT:     "ACMFT",
	ACORDO01:  "ACORDO01",
	ASRFT:     "ASRFT",
	ATMFT:     "ATMFT",
	AXS:       "AXS",
	BAL:       "BAL",
	BARFT:     "BARFT",
	BAT:       "BAT",
	BCH:       "BCH",
	BTC:       "BTC",
	CAIFT:     "CAIFT",
	CHZ:       "CHZ",
	COMP:      "COMP",
	CRV:       "CRV",
	DAI:       "DAI",
	DAL:       "DAL",
	ENJ:       "ENJ",
	ETH:       "ETH",
	GALFT:     "GALFT",
	GRT:       "GRT",
	IMOB01:    "IMOB01",
	JUVFT:     "JUVFT",
	KNC:       "KNC",
	LINK:      "LINK",
	LTC:       "LTC",
	MANA:      "MANA",
	MBCONS01:  "MBCONS01",
	MBCONS02:  "MBCONS02",
	MBFP01:    "MBFP01",
	MBFP02:    "MBFP02",
	MBFP03:    "MBFP03",
	MBFP04:    "MBFP04",
	MBPRK01:   "MBPRK01",
	MBPRK02:   "MBPRK02",
	MBPRK03:   "MBPRK03",
	MBPRK04:   "MBPRK04",
	MBVASCO01: "MBVASCO01",
	MCO2:      "MCO2",
	MKR:       "MKR",
	OGFT:      "OGFT",
	PAXG:      "PAXG",
	PSGFT:     "PSGFT",
	REI:       "REI",
	REN:       "REN",
	SNX:       "SNX",
	UMA:       "UMA",
	UNI:       "UNI",
	USDC:      "USDC",
	WBX:       "WBX",
	XRP:       "XRP",
	YFI:       "YFI",
	ZRX:       "ZRX",
}

// symbols must have exactly one entry per instrument: the index below is a
// negative or out of range constant otherwise and the package won't compile.
var _ = [1]struct{}{}[len(symbols)-int(instrumentCount)]

// ErrUnknownInstrument is returned by ParseInstrument for symbols outside the catalog.
var ErrUnknownInstrument = errors.New("unknown instrument")

// Symbol returns the exchange spelling of the instrument, e.g. "BTC".
// It is used verbatim as a URL path segment.
func (i Instrument) Symbol() string {
	if !i.Valid() {
		return ""
	}
	return symbols[i]
}

func (i Instrument) String() string {
	if !i.Valid() {
		return "Instrument(" + strconv.Itoa(int(i)) + ")"
	}
	return symbols[i]
}

// Valid reports whether i belongs to the catalog.
func (i Instrument) Valid() bool {
	return i >= 0 && i < instrumentCount
}

// Instruments lists the whole catalog in declaration order.
func Instruments() []Instrument {
	list := make([]Instrument, 0, instrumentCount)
	for i := Instrument(0); i < instrumentCount; i++ {
		list = append(list, i)
	}
	return list
}

// ParseInstrument resolves a symbol (case-insensitive) to its Instrument.
func ParseInstrument(symbol string) (Instrument, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	for i, sym := range symbols {
		if sym == s {
			return Instrument(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownInstrument, "symbol %q", symbol)
}

// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package leapsec

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/loxspace/lox/calendar"
	"github.com/loxspace/lox/spicetext"
)

// deltaATKey is the SPICE LSK assignment carrying the TAI-UTC step table,
// an array interleaving whole-second offsets with the @-prefixed date each
// one takes effect on.
const deltaATKey = "DELTET/DELTA_AT"

var lskMonths = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// FromLSK builds a StaticTable from a SPICE LSK text kernel, parsed on top
// of spicetext.Parse per §4.14. It reads only DELTET/DELTA_AT; the
// DELTET/DELTA_T_A, K, EB and M constants an LSK also carries describe the
// separate TT-TDB periodic relation and are out of this package's scope.
func FromLSK(r io.Reader) (*StaticTable, error) {
	k, err := spicetext.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "leapsec: parsing LSK")
	}
	v, ok := k[deltaATKey]
	if !ok {
		return nil, errors.Errorf("leapsec: LSK has no %s assignment", deltaATKey)
	}
	if v.Kind != spicetext.NumberArray {
		return nil, errors.Errorf("leapsec: %s is not a number array", deltaATKey)
	}
	if len(v.Nums) != len(v.TimeRaws) {
		return nil, errors.Errorf("leapsec: %s has %d steps but %d dates", deltaATKey, len(v.Nums), len(v.TimeRaws))
	}

	steps := make([]struct {
		date        calendar.Date
		taiMinusUTC int64
	}, len(v.Nums))
	for i := range v.Nums {
		d, err := parseLSKDate(v.TimeRaws[i])
		if err != nil {
			return nil, errors.Wrapf(err, "leapsec: step %d", i)
		}
		steps[i].date = d
		steps[i].taiMinusUTC = int64(v.Nums[i])
	}

	log.Debug().Int("steps", len(steps)).Msg("leapsec: loaded LSK table")
	return newStaticTable(steps), nil
}

// parseLSKDate parses the text following the '@' marker in a DELTA_AT
// entry, e.g. "1972-JAN-1", into a calendar.Date.
func parseLSKDate(raw string) (calendar.Date, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		return calendar.Date{}, errors.Errorf("leapsec: malformed LSK date %q", raw)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return calendar.Date{}, errors.Wrapf(err, "leapsec: LSK date %q", raw)
	}
	month, ok := lskMonths[strings.ToUpper(parts[1])]
	if !ok {
		return calendar.Date{}, errors.Errorf("leapsec: unknown month in LSK date %q", raw)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return calendar.Date{}, errors.Wrapf(err, "leapsec: LSK date %q", raw)
	}
	return calendar.NewDate(year, month, day)
}

package service

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"property-investment/domain"
)

type fingerprintPayload struct {
	Inputs    domain.InvestmentInputs `msgpack:"inputs"`
	Options   domain.AnalysisOptions  `msgpack:"options"`
	UnitValue float64                 `msgpack:"unit_value"`
}

// Fingerprint identifies an input set, letting a caller skip re-rendering
// when nothing changed. Equal inputs always give the same fingerprint.
func Fingerprint(inputs domain.InvestmentInputs, opts domain.AnalysisOptions, unitValue float64) (string, error) {
	opts.Explain = false
	data, err := msgpack.Marshal(fingerprintPayload{
		Inputs:    inputs,
		Options:   opts,
		UnitValue: unitValue,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

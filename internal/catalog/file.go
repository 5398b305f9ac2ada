package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/efreitasn/tradingsdk/internal/domain"
)

// seedEntry is one instrument in a YAML seed file.
type seedEntry struct {
	Symbol          string  `yaml:"symbol"`
	Exchange        string  `yaml:"exchange"`
	InstrumentType  string  `yaml:"instrumentType"`
	LastTradedPrice float64 `yaml:"lastTradedPrice"`
}

type seedFile struct {
	Instruments []seedEntry `yaml:"instruments"`
}

// LoadFile reads a YAML seed file and builds a catalog from it.
//
//	instruments:
//	  - symbol: RELIANCE
//	    exchange: NSE
//	    instrumentType: EQUITY
//	    lastTradedPrice: 2450.50
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instruments file: %w", err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML seed document. Unknown fields are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("instruments file is empty")
		}
		return nil, fmt.Errorf("decode instruments: %w", err)
	}
	if len(f.Instruments) == 0 {
		return nil, fmt.Errorf("instruments file lists no instruments")
	}

	instruments := make([]domain.Instrument, 0, len(f.Instruments))
	for i, e := range f.Instruments {
		price, err := domain.PriceFromFloat(e.LastTradedPrice)
		if err != nil {
			return nil, fmt.Errorf("instrument %d (%s): lastTradedPrice: %w", i, e.Symbol, err)
		}
		instruments = append(instruments, domain.Instrument{
			Symbol:          e.Symbol,
			Exchange:        domain.Exchange(e.Exchange),
			InstrumentType:  domain.InstrumentType(e.InstrumentType),
			LastTradedPrice: price,
		})
	}
	return New(instruments)
}

package ingest

import (
	"io"

	"github.com/etnz/exposure"
	"github.com/sirupsen/logrus"
)

// Securities table columns.
const (
	ColISIN          = "ISIN"
	ColName          = "Name"
	ColTicker        = "Ticker"
	ColTER           = "TER"
	ColHolding       = "Holding"
	ColHoldingWeight = "HoldingWeight"
	ColSector        = "Sector"
	ColSectorWeight  = "SectorWeight"
	ColCountry       = "Country"
	ColCountryWeight = "CountryWeight"
	ColRegion        = "Region"
	ColRegionWeight  = "RegionWeight"
)

// SecuritiesHeader is the complete header of a securities table.
var SecuritiesHeader = []string{
	ColISIN, ColName, ColTicker, ColTER,
	ColHolding, ColHoldingWeight,
	ColSector, ColSectorWeight,
	ColCountry, ColCountryWeight,
	ColRegion, ColRegionWeight,
}

// ReadSecurities reads a securities table into raw rows.
//
// Only the ISIN column is required. Fields are not interpreted, blank rows
// are skipped.
func ReadSecurities(r io.Reader) ([]exposure.RawRow, error) {
	t, err := newTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require(ColISIN); err != nil {
		return nil, err
	}

	var rows []exposure.RawRow
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rec.blank() {
			continue
		}
		rows = append(rows, exposure.RawRow{
			Line:          rec.line,
			ISIN:          rec.get(ColISIN),
			Name:          rec.get(ColName),
			Ticker:        rec.get(ColTicker),
			TER:           rec.get(ColTER),
			Holding:       rec.get(ColHolding),
			HoldingWeight: rec.get(ColHoldingWeight),
			Sector:        rec.get(ColSector),
			SectorWeight:  rec.get(ColSectorWeight),
			Country:       rec.get(ColCountry),
			CountryWeight: rec.get(ColCountryWeight),
			Region:        rec.get(ColRegion),
			RegionWeight:  rec.get(ColRegionWeight),
		})
	}
	logrus.WithField("rows", len(rows)).Debug("read securities table")
	return rows, nil
}

// ReadSecuritiesFile reads the securities table in path.
func ReadSecuritiesFile(path string) ([]exposure.RawRow, error) {
	return readFile(path, ReadSecurities)
}

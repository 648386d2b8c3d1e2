// pkg/nav/sct.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/util"

	"github.com/davecgh/go-spew/spew"
)

// SectorFile is the parsed form of a EuroScope SCT2 sector file plus,
// optionally, the [SIDSSTARS] section of its companion ESE file. Its
// Elements slice is the navigation Database that route resolution scans.
type SectorFile struct {
	Name              string
	Center            math.Point2LL
	NMPerLongitude    float32
	MagneticVariation float32
	Elements          SliceDatabase
}

// rawAirway accumulates the segment endpoints of one [LOW AIRWAY] or
// [HIGH AIRWAY] entry in file order; the endpoint tokens are either
// dotted DMS coordinates or fix names and are resolved once the whole
// file has been scanned.
type rawAirway struct {
	name     string
	typ      ElementType
	segments [][4]string
}

type rawProcedure struct {
	typ     ElementType // SID or STAR
	airport string
	runway  string
	name    string
	fixes   []string
}

type sctParser struct {
	sf         *SectorFile
	locator    map[string]math.Point2LL
	airways    []rawAirway
	airwayIdx  map[string]int // name+type -> index into airways
	procedures []rawProcedure
	infoLine   int
}

// ParseSectorFile parses the provided sector file and optional ESE
// companion (which may be nil). Problems are accumulated in e; the
// returned SectorFile contains whatever could be salvaged, which may be
// empty.
func ParseSectorFile(sct, ese []byte, e *util.ErrorLogger) *SectorFile {
	p := &sctParser{
		sf:        &SectorFile{NMPerLongitude: 40},
		locator:   make(map[string]math.Point2LL),
		airwayIdx: make(map[string]int),
	}

	e.Push("sector file")
	p.parseSCT(string(sct), e)
	e.Pop()

	if ese != nil {
		e.Push("ESE file")
		p.parseESE(string(ese), e)
		e.Pop()
	}

	p.finish(e)
	return p.sf
}

// splitLines strips comments and whitespace and calls cb for each
// non-empty remaining line.
func splitLines(s string, cb func(line string)) {
	for _, line := range strings.Split(s, "\n") {
		// EuroScope allows ';' comments anywhere on a line.
		if idx := strings.IndexByte(line, ';'); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cb(line)
		}
	}
}

func (p *sctParser) parseSCT(s string, e *util.ErrorLogger) {
	section := ""
	splitLines(s, func(line string) {
		if line[0] == '[' && strings.HasSuffix(line, "]") {
			section = strings.ToUpper(line[1 : len(line)-1])
			return
		}

		switch section {
		case "INFO":
			p.parseInfoLine(line, e)
		case "VOR":
			p.parsePoint(line, VOR, true, e)
		case "NDB":
			p.parsePoint(line, NDB, true, e)
		case "FIXES":
			p.parsePoint(line, Fix, false, e)
		case "AIRPORT":
			p.parsePoint(line, Airport, true, e)
		case "RUNWAY":
			p.parseRunway(line, e)
		case "LOW AIRWAY":
			p.parseAirway(line, LowAirway, e)
		case "HIGH AIRWAY":
			p.parseAirway(line, HighAirway, e)
		default:
			// Anything else ([GEO], [REGIONS], colour defines, ...) is
			// display-only and not navigation data.
		}
	})
}

// The [INFO] section is positional: sector name, callsign, default
// airport, centre latitude, centre longitude, NM per degree of latitude,
// NM per degree of longitude, magnetic variation, scale.
func (p *sctParser) parseInfoLine(line string, e *util.ErrorLogger) {
	defer func() { p.infoLine++ }()

	switch p.infoLine {
	case 0:
		p.sf.Name = line
	case 3:
		if v, err := math.ParseDMS(line); err != nil {
			e.Error(err)
		} else {
			p.sf.Center[1] = v
		}
	case 4:
		if v, err := math.ParseDMS(line); err != nil {
			e.Error(err)
		} else {
			p.sf.Center[0] = v
		}
	case 6:
		if v, err := strconv.ParseFloat(line, 32); err != nil {
			e.ErrorString("%s: invalid NM per degree longitude", line)
		} else {
			p.sf.NMPerLongitude = float32(v)
		}
	case 7:
		if v, err := strconv.ParseFloat(line, 32); err != nil {
			e.ErrorString("%s: invalid magnetic variation", line)
		} else {
			p.sf.MagneticVariation = float32(v)
		}
	}
}

// parsePoint handles the single-position sections: "NAME [FREQ] LAT LON"
// with a frequency column for VORs, NDBs and airports but not fixes.
func (p *sctParser) parsePoint(line string, typ ElementType, hasFreq bool, e *util.ErrorLogger) {
	f := strings.Fields(line)
	nf := util.Select(hasFreq, 4, 3)
	if len(f) < nf {
		e.ErrorString("%s: expected %d fields in %s definition", line, nf, typ)
		return
	}

	pos, err := math.ParseLatLong(f[nf-2], f[nf-1])
	if err != nil {
		e.Error(err)
		return
	}

	p.sf.Elements = append(p.sf.Elements, Element{
		Type:      typ,
		Name:      f[0],
		Positions: []math.Point2LL{pos},
	})
	p.locator[f[0]] = pos
}

// Runway lines give both end identifiers, both magnetic headings, both
// threshold positions, and (in files written this century) the owning
// airport: "09L 27R 093 273 LAT LON LAT LON EGLL".
func (p *sctParser) parseRunway(line string, e *util.ErrorLogger) {
	f := strings.Fields(line)
	if len(f) < 8 {
		e.ErrorString("%s: expected at least 8 fields in runway definition", line)
		return
	}

	p0, err := math.ParseLatLong(f[4], f[5])
	if err != nil {
		e.Error(err)
		return
	}
	p1, err := math.ParseLatLong(f[6], f[7])
	if err != nil {
		e.Error(err)
		return
	}

	el := Element{
		Type:      Runway,
		Name:      f[0] + "-" + f[1],
		Runways:   [2]string{f[0], f[1]},
		Positions: []math.Point2LL{p0, p1},
	}
	if len(f) >= 9 {
		el.Airport = f[8]
	} else {
		e.ErrorString("%s: runway definition does not name its airport", line)
	}
	p.sf.Elements = append(p.sf.Elements, el)
}

// Airway lines each describe one segment: "NAME LAT LON LAT LON", where
// the coordinate columns may instead repeat a fix name. Segments for the
// same airway accumulate in file order.
func (p *sctParser) parseAirway(line string, typ ElementType, e *util.ErrorLogger) {
	f := strings.Fields(line)
	if len(f) != 5 {
		e.ErrorString("%s: expected 5 fields in airway definition", line)
		return
	}

	key := f[0] + "\x00" + typ.String()
	idx, ok := p.airwayIdx[key]
	if !ok {
		idx = len(p.airways)
		p.airwayIdx[key] = idx
		p.airways = append(p.airways, rawAirway{name: f[0], typ: typ})
	}
	p.airways[idx].segments = append(p.airways[idx].segments, [4]string{f[1], f[2], f[3], f[4]})
}

// The ESE [SIDSSTARS] section defines procedures:
// "SID:EGLL:27R:BPK7F:EGLL BPK7F BPK", with the final field naming the
// fixes of the route in order.
func (p *sctParser) parseESE(s string, e *util.ErrorLogger) {
	section := ""
	splitLines(s, func(line string) {
		if line[0] == '[' && strings.HasSuffix(line, "]") {
			section = strings.ToUpper(line[1 : len(line)-1])
			return
		}
		if section != "SIDSSTARS" {
			return
		}

		f := strings.Split(line, ":")
		if len(f) != 5 {
			e.ErrorString("%s: expected 5 colon-separated fields in procedure definition", line)
			return
		}

		var typ ElementType
		switch strings.ToUpper(f[0]) {
		case "SID":
			typ = SID
		case "STAR":
			typ = STAR
		default:
			e.ErrorString("%s: procedure is neither SID nor STAR", f[0])
			return
		}

		p.procedures = append(p.procedures, rawProcedure{
			typ:     typ,
			airport: f[1],
			runway:  f[2],
			name:    f[3],
			fixes:   strings.Fields(f[4]),
		})
	})
}

// resolveEndpoint turns one coordinate column pair into a position:
// either both tokens parse as dotted DMS or both repeat the name of a
// point defined elsewhere in the file.
func (p *sctParser) resolveEndpoint(lat, lon string) (math.Point2LL, bool) {
	if pos, err := math.ParseLatLong(lat, lon); err == nil {
		return pos, true
	}
	if lat == lon {
		if pos, ok := p.locator[lat]; ok {
			return pos, true
		}
	}
	return math.Point2LL{}, false
}

// finish resolves airway segments and procedure fix names against the
// points collected from the full file and appends the corresponding
// elements.
func (p *sctParser) finish(e *util.ErrorLogger) {
	for _, aw := range p.airways {
		e.Push(aw.typ.String() + " " + aw.name)
		el := Element{Type: aw.typ, Name: aw.name}
		for _, seg := range aw.segments {
			for _, ofs := range []int{0, 2} {
				if pos, ok := p.resolveEndpoint(seg[ofs], seg[ofs+1]); ok {
					el.Positions = append(el.Positions, pos)
				} else {
					e.ErrorString("%s %s: unresolvable airway endpoint", seg[ofs], seg[ofs+1])
				}
			}
		}
		if len(el.Positions) > 0 {
			p.sf.Elements = append(p.sf.Elements, el)
		}
		e.Pop()
	}

	for _, proc := range p.procedures {
		e.Push(proc.typ.String() + " " + proc.name)
		el := Element{
			Type:    proc.typ,
			Name:    proc.name,
			Airport: proc.airport,
			Runways: [2]string{proc.runway, ""},
		}
		for _, fix := range proc.fixes {
			if pos, ok := p.locator[fix]; ok {
				el.Positions = append(el.Positions, pos)
			} else {
				e.ErrorString("%s: fix not defined in sector file", fix)
			}
		}
		if len(el.Positions) > 0 {
			p.sf.Elements = append(p.sf.Elements, el)
		} else {
			e.ErrorString("no resolvable fixes in procedure: %s", spew.Sdump(proc))
		}
		e.Pop()
	}
}

func (s *SectorFile) String() string {
	return fmt.Sprintf("%s: %d elements", s.Name, len(s.Elements))
}

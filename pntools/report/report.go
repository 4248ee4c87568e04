package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"peaknear-tools/pntools/convert"
	"peaknear-tools/pntools/peak"

	"github.com/tkrajina/gpxgo/gpx"
)

// LineTemplate is the message printed for every ranked peak. The fragment
// is Slovene for "<name> is <distance>km away".
const LineTemplate = "%s je oddaljen %skm\n"

const gpxVersion = "1.1"
const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpxXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// Text writes one line per ranked peak, nearest first.
func Text(w io.Writer, ranked []peak.Ranked) error {
	for _, r := range ranked {
		if _, err := fmt.Fprintf(w, LineTemplate, r.Peak.Name, convert.Ftoa(r.DistanceKm)); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the ranked peaks as an indented JSON array.
func JSON(w io.Writer, ranked []peak.Ranked) error {
	elts := make([]map[string]interface{}, len(ranked))
	for i, r := range ranked {
		jsonMap := map[string]interface{}{}
		jsonMap["name"] = r.Peak.Name
		jsonMap["country"] = r.Peak.Country
		jsonMap["mountain_range"] = r.Peak.Range
		jsonMap["latitude"] = r.Peak.Latitude
		jsonMap["longitude"] = r.Peak.Longitude
		jsonMap["elevation"] = r.Peak.Elevation
		jsonMap["distance_km"] = r.DistanceKm
		elts[i] = jsonMap
	}

	jsonStr, err := json.MarshalIndent(elts, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(jsonStr))
	return err
}

// CSV writes the ranked peaks as CSV with a header row.
func CSV(w io.Writer, ranked []peak.Ranked) error {
	csvW := csv.NewWriter(w)
	csvW.Write([]string{"name", "country", "mountain range", "latitude", "longitude", "elevation", "distance(km)"})
	for _, r := range ranked {
		csvW.Write([]string{
			r.Peak.Name,
			r.Peak.Country,
			r.Peak.Range,
			convert.Ftoa(r.Peak.Latitude),
			convert.Ftoa(r.Peak.Longitude),
			strconv.Itoa(r.Peak.Elevation),
			convert.Ftoa(r.DistanceKm),
		})
	}
	csvW.Flush()
	return csvW.Error()
}

// GPX writes the ranked peaks as GPX 1.1 waypoints, nearest first.
func GPX(w io.Writer, ranked []peak.Ranked) error {
	waypoints := make([]gpx.GPXPoint, len(ranked))
	for i, r := range ranked {
		waypoints[i] = gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  r.Peak.Latitude,
				Longitude: r.Peak.Longitude,
				Elevation: *gpx.NewNullableFloat64(float64(r.Peak.Elevation)),
			},
			Name:        r.Peak.Name,
			Description: fmt.Sprintf("%s, %s (%skm)", r.Peak.Range, r.Peak.Country, convert.Ftoa(r.DistanceKm)),
		}
	}

	g := gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpxXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version:   gpxVersion,
		Creator:   "peaknear-tools",
		Waypoints: waypoints,
	}

	xmlBytes, err := g.ToXml(gpx.ToXmlParams{Version: gpxVersion, Indent: true})
	if err != nil {
		return err
	}

	_, err = w.Write(xmlBytes)
	return err
}

// Package continent extracts colored continent-outline rasters from the
// embedded vector world map. Each named shape group becomes one PNG,
// filled per the configured color mapping, for use as card icons.
package continent

import (
	"embed"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

//go:embed worldmap.svg
var worldMapFS embed.FS

// Point is one vertex in map coordinates.
type Point struct {
	X, Y float64
}

// Shape is one named group of filled polygons from the map.
type Shape struct {
	Name     string
	Polygons [][]Point
}

type svgDoc struct {
	XMLName xml.Name   `xml:"svg"`
	Groups  []svgGroup `xml:"g"`
}

type svgGroup struct {
	ID       string       `xml:"id,attr"`
	Polygons []svgPolygon `xml:"polygon"`
}

type svgPolygon struct {
	Points string `xml:"points,attr"`
}

// LoadMap parses the embedded world map into its shape groups, in
// document order.
func LoadMap() ([]Shape, error) {
	data, err := worldMapFS.ReadFile("worldmap.svg")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded map: %v", err)
	}

	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing embedded map: %v", err)
	}

	var shapes []Shape
	for _, g := range doc.Groups {
		if g.ID == "" {
			continue
		}
		shape := Shape{Name: g.ID}
		for _, p := range g.Polygons {
			poly, err := parsePoints(p.Points)
			if err != nil {
				return nil, fmt.Errorf("shape %s: %v", g.ID, err)
			}
			if len(poly) >= 3 {
				shape.Polygons = append(shape.Polygons, poly)
			}
		}
		if len(shape.Polygons) > 0 {
			shapes = append(shapes, shape)
		}
	}
	return shapes, nil
}

func parsePoints(s string) ([]Point, error) {
	var poly []Point
	for _, pair := range strings.Fields(s) {
		xy := strings.SplitN(pair, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed point %q", pair)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q", pair)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed point %q", pair)
		}
		poly = append(poly, Point{X: x, Y: y})
	}
	return poly, nil
}

// Bounds returns the bounding box of all polygons in the shape.
func (s *Shape) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, poly := range s.Polygons {
		for _, p := range poly {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, minY, maxX, maxY
}

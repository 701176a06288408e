package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Section headers of the line-oriented .ql format.
const (
	sectionTilemap   = "Tilemap"
	sectionBouncy    = "BouncyObjects"
	sectionInventory = "Inventory"
	sectionBags      = "MoneyBags"
	sectionNeeded    = "MoneyBagsNeeded"
	sectionMeta      = "Meta"
)

var (
	headerRe = regexp.MustCompile(`^\[(\w+)\]$`)
	tupleRe  = regexp.MustCompile(`\(\s*([^,()]+?)\s*,\s*([^,()]+?)\s*\)`)
)

// ParseQL parses the original line-oriented level format:
//
//	[Tilemap]
//	18 rows of space separated base-36 tile ids
//	[BouncyObjects]
//	(x1,y1) (x2,y2) cor (ox,oy) [kind [boost]]
//	[Inventory]
//	(item,count)
//	[MoneyBags]
//	(x,y)
//	[MoneyBagsNeeded]
//	n
//
// Blank lines end a section. Lines starting with # are comments.
func ParseQL(data []byte) (Level, error) {
	var level Level
	section := ""
	lineNo := 0

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			section = ""
			continue
		}
		if m := headerRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}

		var err error
		switch section {
		case sectionTilemap:
			var ids []int
			ids, err = ParseTileRow(line)
			level.Tilemap = append(level.Tilemap, ids)
		case sectionBouncy:
			var o Obstacle
			o, err = parseQLObstacle(line)
			level.Obstacles = append(level.Obstacles, o)
		case sectionInventory:
			var item string
			var count int
			item, count, err = parseQLInventory(line)
			if err == nil {
				if level.Inventory == nil {
					level.Inventory = make(map[string]int)
				}
				level.Inventory[item] += count
			}
		case sectionBags:
			var p [2]float32
			p, err = parseTuple(line)
			level.MoneyBags = append(level.MoneyBags, p)
		case sectionNeeded:
			level.Needed, err = strconv.Atoi(line)
			if err == nil && level.Needed < 0 {
				err = fmt.Errorf("must not be negative")
			}
		case sectionMeta:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				err = fmt.Errorf("expected key=value")
				break
			}
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			switch key {
			case "id":
				level.ID = value
			case "name":
				level.Name = value
			default:
				if level.Metadata == nil {
					level.Metadata = make(map[string]string)
				}
				level.Metadata[key] = value
			}
		default:
			// Text outside a known section is ignored.
		}
		if err != nil {
			return Level{}, fmt.Errorf("line %d (%s): %w", lineNo, section, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading: %w", err)
	}
	return level, nil
}

// ParseTileRow parses one row of space separated base-36 tile ids.
func ParseTileRow(row string) ([]int, error) {
	fields := strings.Fields(row)
	ids := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 36, 16)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		ids[i] = int(n)
	}
	return ids, nil
}

func parseTuple(s string) ([2]float32, error) {
	m := tupleRe.FindStringSubmatch(s)
	if m == nil {
		return [2]float32{}, fmt.Errorf("expected (x,y), got %q", s)
	}
	return parsePair(m[1], m[2])
}

func parsePair(a, b string) ([2]float32, error) {
	x, err := strconv.ParseFloat(a, 32)
	if err != nil {
		return [2]float32{}, err
	}
	y, err := strconv.ParseFloat(b, 32)
	if err != nil {
		return [2]float32{}, err
	}
	return [2]float32{float32(x), float32(y)}, nil
}

func parseQLObstacle(line string) (Obstacle, error) {
	tuples := tupleRe.FindAllStringSubmatchIndex(line, -1)
	if len(tuples) != 3 {
		return Obstacle{}, fmt.Errorf("expected (x1,y1) (x2,y2) cor (ox,oy), got %q", line)
	}

	var pts [3][2]float32
	for i, idx := range tuples {
		p, err := parsePair(line[idx[2]:idx[3]], line[idx[4]:idx[5]])
		if err != nil {
			return Obstacle{}, err
		}
		pts[i] = p
	}

	corText := strings.TrimSpace(line[tuples[1][1]:tuples[2][0]])
	cor, err := strconv.ParseFloat(corText, 32)
	if err != nil {
		return Obstacle{}, fmt.Errorf("cor: %w", err)
	}

	o := Obstacle{
		Start:       pts[0],
		End:         pts[1],
		COR:         float32(cor),
		Orientation: pts[2],
	}

	rest := strings.Fields(line[tuples[2][1]:])
	if len(rest) > 0 {
		o.Kind = strings.ToLower(rest[0])
	}
	if len(rest) > 1 {
		boost, err := strconv.ParseFloat(rest[1], 32)
		if err != nil {
			return Obstacle{}, fmt.Errorf("boost: %w", err)
		}
		o.Boost = float32(boost)
	}
	return o, nil
}

func parseQLInventory(line string) (string, int, error) {
	m := tupleRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, fmt.Errorf("expected (item,count), got %q", line)
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf("count: %w", err)
	}
	return m[1], count, nil
}

package models

import "fmt"

// Area is one of the five Norwegian price areas prices are partitioned by.
type Area string

const (
	AreaNO1 Area = "NO1"
	AreaNO2 Area = "NO2"
	AreaNO3 Area = "NO3"
	AreaNO4 Area = "NO4"
	AreaNO5 Area = "NO5"
)

// Areas returns all valid price areas in fixed order.
func Areas() []Area {
	return []Area{AreaNO1, AreaNO2, AreaNO3, AreaNO4, AreaNO5}
}

// Valid reports whether the area is one of the five known codes.
func (a Area) Valid() bool {
	switch a {
	case AreaNO1, AreaNO2, AreaNO3, AreaNO4, AreaNO5:
		return true
	}
	return false
}

func (a Area) String() string {
	return string(a)
}

// ParseArea validates a raw area code
func ParseArea(s string) (Area, error) {
	a := Area(s)
	if !a.Valid() {
		return "", fmt.Errorf("invalid area %q, expected NO1..NO5", s)
	}
	return a, nil
}

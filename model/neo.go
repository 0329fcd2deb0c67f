package model

import (
	"fmt"
	"strconv"
)

// NearEarthObject is a single near-Earth object as listed in the NEO catalog.
type NearEarthObject struct {
	// Designation is the primary designation, e.g. "433". Never empty.
	Designation string

	// Name is the IAU name, e.g. "Eros". Empty when the object is unnamed.
	Name string

	// Diameter is the estimated diameter in kilometers as read from the
	// source. Empty when unknown.
	Diameter string

	// Hazardous is the raw potentially-hazardous flag ("Y", "N" or "").
	Hazardous string

	// Approaches holds the object's close approaches once linked.
	Approaches []*CloseApproach
}

// NewNearEarthObject creates an object with an empty approach list.
func NewNearEarthObject(designation, name, diameter, hazardous string) *NearEarthObject {
	return &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
		Approaches:  []*CloseApproach{},
	}
}

// DiameterKM returns the diameter in kilometers. ok is false when the
// diameter is unknown or not a number.
func (n *NearEarthObject) DiameterKM() (km float64, ok bool) {
	if n.Diameter == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Diameter, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsHazardous reports whether the object is flagged as potentially hazardous.
func (n *NearEarthObject) IsHazardous() bool {
	return n.Hazardous == "Y"
}

// FullName returns "designation (name)", or just the designation for
// unnamed objects.
func (n *NearEarthObject) FullName() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

func (n *NearEarthObject) String() string {
	diameter := "an unknown diameter"
	if km, ok := n.DiameterKM(); ok {
		diameter = fmt.Sprintf("a diameter of %.3f km", km)
	}
	hazard := "is not"
	if n.IsHazardous() {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has %s and %s potentially hazardous", n.FullName(), diameter, hazard)
}

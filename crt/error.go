package crt

import "fmt"

// InvalidCapacity - Custom error to inform that a table was requested with a capacity that can not be addressed
type InvalidCapacity struct {
	Capacity int64
}

// Error - Used to notify that the capacity is out of range
func (E InvalidCapacity) Error() string {
	return fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", E.Capacity)
}

// Is - Makes errors.Is match any InvalidCapacity regardless of the offending value
func (E InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}

// UnknownTechnique - Custom error to inform that the collision resolution technique is not supported
type UnknownTechnique struct {
	Technique int
}

// Error - Used to notify that the collision resolution technique is unknown
func (U UnknownTechnique) Error() string {
	return fmt.Sprintf("unknown collision resolution technique %d", U.Technique)
}

// Is - Makes errors.Is match any UnknownTechnique regardless of the offending value
func (U UnknownTechnique) Is(target error) bool {
	_, ok := target.(UnknownTechnique)
	return ok
}

package crt

// SeparateChaining - Collision resolution technique where every bucket heads a singly linked chain of nodes
const SeparateChaining int = 0

// LinearProbing - Open addressing collision resolution technique probing one slot at a time
const LinearProbing int = 1

// Name - Returns a human readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return "Unknown"
	}
}

// Package flp implements the facility-layout optimization core: a
// placement constructor, a multi-objective evaluator, and a tabu-search
// metaheuristic driver for the Unequal-Area Facility Layout Problem.
package flp

import "log"

// WarnFunc receives data-quality warnings that do not abort a run (see
// spec §7): duplicate department ids and matrix entries referencing
// unknown department ids. Fixed-department bound and overlap issues
// found during construction are recorded on Layout.Warnings instead and
// surface in BestResult.Warnings.
type WarnFunc func(format string, args ...any)

// defaultWarn is the fallback sink used when no WarnFunc is supplied.
func defaultWarn(format string, args ...any) {
	log.Printf("flp: "+format, args...)
}

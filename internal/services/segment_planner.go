package services

import (
	"fmt"
	"math"

	"eld-trip-service/internal/domain"
)

// Hours-of-service limits and fixed activity durations, in hours and miles.
const (
	maxDrivingBeforeBreak = 8.0
	maxDailyDriving       = 11.0
	maxDutyWindow         = 14.0
	maxCycleHours         = 70.0

	breakDurationHours   = 0.5
	restDurationHours    = 10.0
	fuelStopHours        = 0.5
	fuelIntervalMiles    = 1000.0
	pickupDurationHours  = 1.0
	dropoffDurationHours = 1.0

	// Legs at most this long cannot hit a mandatory interruption.
	shortLegMaxHours = 8.0
	shortLegMaxMiles = 550.0

	// Terminates the planning loop despite floating-point residue.
	distanceEpsilon = 0.1
)

// PlanSegments decomposes one leg into HOS-compliant segments and
// advances the driver state as they are emitted. Order numbers are
// assigned sequentially from startOrder; every emitted segment consumes
// one. The driving-segment distances reconstruct the leg distance and
// the driving durations the leg duration, up to two-decimal rounding.
func PlanSegments(originLabel, destLabel string, distanceMiles, durationHours float64, state *domain.DriverState, startOrder int) ([]domain.Segment, error) {
	if distanceMiles <= distanceEpsilon {
		return nil, nil
	}

	order := startOrder

	if durationHours <= shortLegMaxHours && distanceMiles <= shortLegMaxMiles {
		state.RecordDriving(durationHours)
		return []domain.Segment{{
			StartLocation: originLabel,
			EndLocation:   destLabel,
			DistanceMiles: distanceMiles,
			DurationHours: durationHours,
			Kind:          domain.SegmentDriving,
			Order:         order,
		}}, nil
	}

	var segments []domain.Segment
	remainingDistance := distanceMiles
	remainingDuration := durationHours
	driven := 0.0

	for remainingDistance > distanceEpsilon {
		interrupted := false

		if state.DrivingSinceBreak >= maxDrivingBeforeBreak {
			segments = append(segments, stopSegment("Rest stop near "+originLabel, breakDurationHours, domain.SegmentBreak, order))
			order++
			state.ResetAfterBreak()
			state.RecordOnDuty(breakDurationHours)
			interrupted = true
		}

		if state.OnDutySinceRest >= maxDutyWindow || state.DrivingSinceRest >= maxDailyDriving || state.CycleHours >= maxCycleHours {
			segments = append(segments, stopSegment("Rest area near "+originLabel, restDurationHours, domain.SegmentRest, order))
			order++
			state.ResetAfterRest()
			interrupted = true
		}

		var segTime, segDistance float64
		if durationHours == 0 {
			// Degenerate leg: consume all distance at zero elapsed time.
			segDistance = remainingDistance
		} else {
			window := min(
				maxDrivingBeforeBreak-state.DrivingSinceBreak,
				maxDailyDriving-state.DrivingSinceRest,
				maxDutyWindow-state.OnDutySinceRest,
				remainingDuration,
			)
			if window <= 0 {
				if interrupted {
					// A counter was just reset; the window opens next pass.
					continue
				}
				return nil, fmt.Errorf("plan segments: no drivable window and no pending break or rest (%.2f mi remaining)", remainingDistance)
			}
			segTime = window
			segDistance = segTime / durationHours * distanceMiles
			if segDistance > remainingDistance {
				segDistance = remainingDistance
			}
		}

		endLocation := "En route to " + destLabel
		if remainingDistance-segDistance <= distanceEpsilon {
			segDistance = remainingDistance
			endLocation = destLabel
		}

		if driven > 0 && math.Floor((driven+segDistance)/fuelIntervalMiles) > math.Floor(driven/fuelIntervalMiles) {
			segments = append(segments, stopSegment("Fuel stop near "+originLabel, fuelStopHours, domain.SegmentFuel, order))
			order++
			state.RecordOnDuty(fuelStopHours)
		}

		segments = append(segments, domain.Segment{
			StartLocation: originLabel,
			EndLocation:   endLocation,
			DistanceMiles: round2(segDistance),
			DurationHours: round2(segTime),
			Kind:          domain.SegmentDriving,
			Order:         order,
		})
		order++

		remainingDistance -= segDistance
		remainingDuration -= segTime
		driven += segDistance
		state.RecordDriving(segTime)
	}

	return segments, nil
}

func stopSegment(location string, hours float64, kind domain.SegmentKind, order int) domain.Segment {
	return domain.Segment{
		StartLocation: location,
		EndLocation:   location,
		DistanceMiles: 0,
		DurationHours: hours,
		Kind:          kind,
		Order:         order,
	}
}

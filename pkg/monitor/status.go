package monitor

import "watchpost.dev/monitor-status-service/pkg/models"

// EvaluateStatus derives monitor health from the recent ping window, most
// recent first. The latest observation dominates so failures surface fast;
// the trailing window smooths a single flake into degraded instead of
// flapping straight back to up. Pure, called on every ping arrival.
func EvaluateStatus(pings []models.PingRecord) models.Status {
	if len(pings) == 0 {
		return models.StatusUnknown
	}

	if !healthyStatusCode(pings[0].StatusCode) {
		return models.StatusDown
	}

	window := pings
	if len(window) > DefaultStatusWindow {
		window = window[:DefaultStatusWindow]
	}
	for _, p := range window[1:] {
		if !healthyStatusCode(p.StatusCode) {
			return models.StatusDegraded
		}
	}

	return models.StatusUp
}

func healthyStatusCode(code int) bool {
	return code >= 200 && code < 400
}

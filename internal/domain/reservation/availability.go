package reservation

// FindAvailable scans window in ascending order and returns at most n weekdays
// that are not in booked. It never returns nil.
func FindAvailable(window DateRange, booked map[Date]struct{}, n int) []Date {
	available := make([]Date, 0, min(max(n, 0), window.Days()))
	if n <= 0 {
		return available
	}
	for d := window.Start(); !d.After(window.End()) && len(available) < n; d = d.AddDays(1) {
		if d.IsWeekend() {
			continue
		}
		if _, taken := booked[d]; taken {
			continue
		}
		available = append(available, d)
	}
	return available
}

package client

// planIDsByRAM maps a plan's RAM allotment in megabytes to the plan ID
// the API expects. The table is fixed by the provider (updated 6/28/10).
var planIDsByRAM = map[int]string{
	512:   "1",
	768:   "2",
	1024:  "3",
	1536:  "4",
	2048:  "5",
	4096:  "6",
	8192:  "7",
	12288: "8",
	16384: "9",
	20480: "10",
}

// PlanIDForRAM returns the plan ID for a RAM size in megabytes. The
// second return is false if no plan matches that size exactly.
func PlanIDForRAM(ram int) (string, bool) {
	id, ok := planIDsByRAM[ram]
	return id, ok
}

package domain

// CPU is a single processor specification record. Optional numeric fields
// are pointers so a missing value survives import/export round trips
// without collapsing to zero.
type CPU struct {
	ID          int64    `json:"id"`
	ModelName   string   `json:"cpu_model_name"`
	Family      string   `json:"family,omitempty"`
	Model       string   `json:"cpu_model,omitempty"`
	Codename    string   `json:"codename,omitempty"`
	Cores       *int     `json:"cores,omitempty"`
	Threads     *int     `json:"threads,omitempty"`
	MaxTurboGHz *float64 `json:"max_turbo_frequency_ghz,omitempty"`
	L3CacheMB   *float64 `json:"l3_cache_mb,omitempty"`
	TDPWatts    *int     `json:"tdp_watts,omitempty"`
	LaunchYear  *int     `json:"launch_year,omitempty"`
	MaxMemoryTB *float64 `json:"max_memory_tb,omitempty"`
}

// Stats summarizes the catalog contents.
type Stats struct {
	TotalCPUs      int      `json:"total_cpus"`
	UniqueFamilies int      `json:"unique_families"`
	AverageCores   *float64 `json:"average_cores"`
}

// Year returns the launch year or 0 when unset.
func (c CPU) Year() int {
	if c.LaunchYear == nil {
		return 0
	}
	return *c.LaunchYear
}

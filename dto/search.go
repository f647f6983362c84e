package dto

// StudentSearchFilters is the remembered per-session student list filter.
// Pointer fields distinguish "not set" from zero values.
type StudentSearchFilters struct {
	Course   string `json:"course,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Name     string `json:"name,omitempty"`
	Semester *int   `json:"semester,omitempty"`
	Status   *int   `json:"status,omitempty"`
	HostelID *uint  `json:"hostelId,omitempty"`
}

package dto

// Request DTOs

type PatientListQuery struct {
	Search string `validate:"max=100"`
	Page   int
}

// Response DTOs

type PatientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// PatientPageResponse is one page of the patient table
type PatientPageResponse struct {
	Patients   []PatientResponse `json:"patients"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	From       int               `json:"from"`
	To         int               `json:"to"`
	HasNext    bool              `json:"has_next"`
	HasPrev    bool              `json:"has_previous"`
	Pages      []int             `json:"pages"`
}

package dto

// ModelAdminResponse describes how one model is presented in the admin
type ModelAdminResponse struct {
	Name               string              `json:"name" example:"course"`
	Path               string              `json:"path" example:"/api/v1/admin/courses"`
	ListDisplay        []string            `json:"listDisplay"`
	ListFilter         []string            `json:"listFilter,omitempty"`
	SearchFields       []string            `json:"searchFields,omitempty"`
	PrepopulatedFields map[string][]string `json:"prepopulatedFields,omitempty"`
	Inlines            []string            `json:"inlines,omitempty"`
	Ordering           []string            `json:"ordering,omitempty"`
}

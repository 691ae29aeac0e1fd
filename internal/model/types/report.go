package types

import "roadwatch.dev/backend/internal/model"

// CreateReportRequest is the body of POST /api/v1/report.
//
// The mobile client also sends location and a base64 image. Both are accepted
// but not mapped into the stored report: the create contract persists userName,
// type, title and description only.
type CreateReportRequest struct {
	UserName    string `json:"userName" example:"Mark"`
	Type        string `json:"type" example:"Potholes"`
	Title       string `json:"title" example:"Big hole"`
	Description string `json:"description" example:"On Main St"`
	Location    string `json:"location,omitempty" example:"Via Roma 1, Milano"`
	Image       string `json:"image,omitempty"`
}

// ReportInput maps the request to the entity input using the documented field mapping.
func (r *CreateReportRequest) ReportInput() model.ReportInput {
	return model.ReportInput{
		UserName:    r.UserName,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
	}
}

package constant

// Category labels offered by the mobile client's category selector.
// The set is open-ended: the server stores any non-empty label.
const (
	CategoryPotholes      = "Potholes"
	CategoryLighting      = "Lighting"
	CategoryGenericHazard = "Generic Hazard"
	CategoryDrainManhole  = "Drain/Manhole"
)

var Categories = []string{
	CategoryDrainManhole,
	CategoryPotholes,
	CategoryLighting,
	CategoryGenericHazard,
}

const (
	ReportCollection = "reports"

	// ReportCreatedSubject is the NATS subject a report.created event is published on.
	ReportCreatedSubject = "REPORT.CREATED"
)

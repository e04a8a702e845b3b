package events

const (
	SubjectReportComputed   = "venturelens.report.computed"
	SubjectEnvScoreComputed = "venturelens.environment.computed"
	SubjectFeedbackReceived = "venturelens.feedback.received"
	SubjectUserSignedUp     = "venturelens.user.signedup"

	StreamName   = "VENTURELENS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectReportSaved(reportID string) string { return "venturelens.report." + reportID + ".saved" }

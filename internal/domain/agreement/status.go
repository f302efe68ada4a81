package agreement

// StatusInfo is the presentation mapping for a status value.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ResolveStatus maps a status to its display label and color. The mapping is
// total: unknown values fall back to the raw string with a neutral color so
// a new server-side status never breaks rendering.
func ResolveStatus(s Status) StatusInfo {
	switch s {
	case StatusDraft:
		return StatusInfo{Label: "Draft", Color: "gray"}
	case StatusSubmitted:
		return StatusInfo{Label: "Submitted", Color: "blue"}
	case StatusPendingSupervisor:
		return StatusInfo{Label: "Pending Supervisor", Color: "amber"}
	case StatusPendingHOD:
		return StatusInfo{Label: "Pending HOD", Color: "amber"}
	case StatusApprovedSupervisor:
		return StatusInfo{Label: "Approved by Supervisor", Color: "teal"}
	case StatusApproved:
		return StatusInfo{Label: "Approved", Color: "green"}
	case StatusRejectedBySupervisor:
		return StatusInfo{Label: "Rejected by Supervisor", Color: "red"}
	case StatusRejectedByHOD:
		return StatusInfo{Label: "Rejected by HOD", Color: "red"}
	case StatusRejected:
		return StatusInfo{Label: "Rejected", Color: "red"}
	default:
		return StatusInfo{Label: string(s), Color: "neutral"}
	}
}

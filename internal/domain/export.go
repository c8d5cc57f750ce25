package domain

// ExportRequest is the message queued for the export worker.
type ExportRequest struct {
	PlaylistID  string `json:"playlistId"`
	TargetEmail string `json:"targetEmail"`
}

package models

// BrokerImportResult summarizes the sheet sync outcome for a single broker
type BrokerImportResult struct {
	Broker   string `json:"broker"`
	Status   string `json:"status"` // success, skipped or error
	Deleted  int    `json:"deleted,omitempty"`
	Imported int    `json:"imported,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ImportReport is the overall spreadsheet import summary
type ImportReport struct {
	Message       string               `json:"message"`
	TotalDeleted  int                  `json:"total_deleted"`
	TotalImported int                  `json:"total_imported"`
	Brokers       []BrokerImportResult `json:"brokers"`
}

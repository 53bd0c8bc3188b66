package domain

// StagedPage represents a page copied out of a comic archive under a
// temporary name, before it is renamed into the final numbered sequence.
type StagedPage struct {
	ArchivePath string // original slash-separated path inside the container
	TempPath    string // temporary file holding the page bytes
	Ext         string // detected filename extension, without the dot; "" if none
}

// ProgressFunc reports extraction progress after each completed page.
// done is the number of pages finished so far out of total.
type ProgressFunc func(done, total int)

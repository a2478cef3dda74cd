package models

// CitizenshipEntry is one row of the citizenship reference table.
// From and Through keep the source dd/MM/yyyy format.
type CitizenshipEntry struct {
	Code        string
	Explanation string
	From        string
	Through     string
}

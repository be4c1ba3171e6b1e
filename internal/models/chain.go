package models

// ChainRow is one raw prerequisite-chain entry as imported from the
// registrar's catalog. All fields are kept as text: the source is known to
// contain blank and non-numeric rows, and the index builder decides what to
// keep.
type ChainRow struct {
	ChainID    string `db:"chain_id" json:"chain_id"`
	Order      string `db:"seq" json:"order"`
	CourseCode string `db:"course_code" json:"course_code"`
}

package models

// Counter is a named sequence used to issue student codes. The row is
// locked for update while a code is generated.
type Counter struct {
	Name string `gorm:"primaryKey;type:varchar(30)" json:"name"`
	Seq  int64  `gorm:"default:0" json:"seq"`
}

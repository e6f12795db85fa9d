package model

// AttendeeModel is the GORM-specific struct for the 'attendees' table.
type AttendeeModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	AccountName string `gorm:"type:varchar(255);not null"`
	IsAttended  bool   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AttendeeModel) TableName() string {
	return "attendees"
}
